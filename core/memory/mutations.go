package memory

import (
	"reflect"
	"slices"

	"model-storage/core/section"
	"model-storage/core/update"

	"go.uber.org/zap"
)

// AddItem appends item to the section at index, creating missing sections.
func (s *Storage) AddItem(item any, sectionIndex int) {
	s.beginBatch(false)
	defer s.endBatch()

	s.addItem(item, sectionIndex)
}

// AddItems appends items in order to the section at index.
func (s *Storage) AddItems(items []any, sectionIndex int) {
	s.beginBatch(false)
	defer s.endBatch()

	for _, item := range items {
		s.addItem(item, sectionIndex)
	}
}

func (s *Storage) addItem(item any, sectionIndex int) {
	if sectionIndex < 0 {
		s.logger.Warn("Cannot add item to negative section", zap.Int("section", sectionIndex))
		return
	}
	i := s.ensureSection(sectionIndex).Append(item)
	s.batch.insertItem(update.Path(sectionIndex, i))
}

// InsertItem inserts item at p. Inserting past the end of the section is
// logged and ignored.
func (s *Storage) InsertItem(item any, p update.IndexPath) {
	s.beginBatch(false)
	defer s.endBatch()

	s.insertItem(item, p)
}

// InsertItems inserts items[i] at paths[i], in order. Mismatched lengths are
// logged and ignored.
func (s *Storage) InsertItems(items []any, paths []update.IndexPath) {
	if len(items) != len(paths) {
		s.logger.Warn("Items and index paths differ in length",
			zap.Int("items", len(items)),
			zap.Int("paths", len(paths)),
		)
		return
	}

	s.beginBatch(false)
	defer s.endBatch()

	for i, item := range items {
		s.insertItem(item, paths[i])
	}
}

func (s *Storage) insertItem(item any, p update.IndexPath) {
	if p.Section < 0 || p.Item < 0 {
		s.logger.Warn("Cannot insert item at negative index path", zap.Stringer("path", p))
		return
	}
	count := 0
	if sec, ok := s.Section(p.Section); ok {
		count = sec.NumberOfItems()
	}
	if p.Item > count {
		s.logger.Warn("Cannot insert item past the end of section",
			zap.Stringer("path", p),
			zap.Int("count", count),
		)
		return
	}
	s.ensureSection(p.Section).Insert(p.Item, item)
	s.batch.insertItem(p)
}

// RemoveItem removes item from the storage. Unknown items are logged and
// ignored.
func (s *Storage) RemoveItem(item any) {
	s.RemoveItems([]any{item})
}

// RemoveItems removes every given item. Positions are resolved before
// anything is removed, so the order of items does not matter.
func (s *Storage) RemoveItems(items []any) {
	s.beginBatch(false)
	defer s.endBatch()

	paths := make([]update.IndexPath, 0, len(items))
	for _, item := range items {
		p, ok := s.IndexPathOf(item)
		if !ok {
			s.logger.Warn("Cannot remove item not found in storage", zap.Any("item", item))
			continue
		}
		paths = append(paths, p)
	}
	s.removeAt(paths)
}

// RemoveItemsAt removes the items at paths. Paths outside the storage are
// logged and skipped.
func (s *Storage) RemoveItemsAt(paths []update.IndexPath) {
	s.beginBatch(false)
	defer s.endBatch()

	valid := make([]update.IndexPath, 0, len(paths))
	for _, p := range paths {
		if _, ok := s.ItemAt(p); !ok {
			s.logger.Warn("Cannot remove item at missing index path", zap.Stringer("path", p))
			continue
		}
		valid = append(valid, p)
	}
	s.removeAt(valid)
}

// RemoveItemsFromSection removes every item of the section at index.
func (s *Storage) RemoveItemsFromSection(sectionIndex int) {
	s.beginBatch(false)
	defer s.endBatch()

	sec, ok := s.Section(sectionIndex)
	if !ok {
		s.logger.Warn("Cannot remove items from missing section", zap.Int("section", sectionIndex))
		return
	}
	paths := make([]update.IndexPath, sec.NumberOfItems())
	for i := range paths {
		paths[i] = update.Path(sectionIndex, i)
	}
	s.removeAt(paths)
}

// RemoveAllItems empties every section. Sections themselves are kept. The
// batch is delivered as a full reload.
func (s *Storage) RemoveAllItems() {
	s.beginBatch(false)
	defer s.endBatch()

	for _, sec := range s.sections {
		sec.SetItems(nil)
	}
	s.batch.requireReload()
}

// removeAt removes valid paths from the highest position down so that no
// removal shifts a later one.
func (s *Storage) removeAt(paths []update.IndexPath) {
	paths = slices.Clone(paths)
	slices.SortFunc(paths, func(a, b update.IndexPath) int { return b.Compare(a) })
	paths = slices.Compact(paths)
	for _, p := range paths {
		s.sections[p.Section].Remove(p.Item)
		s.batch.removeItem(p)
	}
}

// ReplaceItem substitutes replacement for old in place and records an
// update at its position. Nothing happens when old is unknown or
// replacement is nil, including a typed nil pointer.
func (s *Storage) ReplaceItem(old, replacement any) {
	s.beginBatch(false)
	defer s.endBatch()

	if absent(replacement) {
		s.logger.Warn("Cannot replace item with nil")
		return
	}
	p, ok := s.IndexPathOf(old)
	if !ok {
		s.logger.Warn("Cannot replace item not found in storage", zap.Any("item", old))
		return
	}
	s.sections[p.Section].Replace(p.Item, replacement)
	s.batch.reloadItem(p)
}

// ReloadItem records an update at item's current position.
func (s *Storage) ReloadItem(item any) {
	s.beginBatch(false)
	defer s.endBatch()

	p, ok := s.IndexPathOf(item)
	if !ok {
		s.logger.Warn("Cannot reload item not found in storage", zap.Any("item", item))
		return
	}
	s.batch.reloadItem(p)
}

// MoveItem moves the item at from to to. The destination is addressed after
// the item left its source, so within one section to.Item may be at most the
// section length minus one.
func (s *Storage) MoveItem(from, to update.IndexPath) {
	s.beginBatch(false)
	defer s.endBatch()

	item, ok := s.ItemAt(from)
	if !ok {
		s.logger.Warn("Cannot move item from missing index path", zap.Stringer("from", from))
		return
	}
	if to.Section < 0 || to.Item < 0 {
		s.logger.Warn("Cannot move item to negative index path", zap.Stringer("to", to))
		return
	}
	count := 0
	if sec, ok := s.Section(to.Section); ok {
		count = sec.NumberOfItems()
	}
	if to.Section == from.Section {
		count--
	}
	if to.Item > count {
		s.logger.Warn("Cannot move item past the end of section",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Int("count", count),
		)
		return
	}

	dest := s.ensureSection(to.Section)
	s.sections[from.Section].Remove(from.Item)
	dest.Insert(to.Item, item)
	s.batch.moveItem(from, to)
}

// MoveSection moves the section at from to index to, creating missing
// sections up to both indices.
func (s *Storage) MoveSection(from, to int) {
	s.beginBatch(false)
	defer s.endBatch()

	if from < 0 || to < 0 {
		s.logger.Warn("Cannot move negative section", zap.Int("from", from), zap.Int("to", to))
		return
	}
	s.ensureSection(max(from, to))
	if from == to {
		return
	}
	sec := s.sections[from]
	s.sections = slices.Delete(s.sections, from, from+1)
	s.sections = slices.Insert(s.sections, to, sec)
	s.batch.moveSection(from, to)
}

// InsertSection inserts sec with its items and supplementaries at index.
// The storage takes ownership of sec. Indices past the number of sections
// are logged and ignored.
func (s *Storage) InsertSection(sec *section.Section, index int) {
	s.beginBatch(false)
	defer s.endBatch()

	if sec == nil || index < 0 || index > len(s.sections) {
		s.logger.Warn("Cannot insert section", zap.Int("section", index), zap.Int("count", len(s.sections)))
		return
	}
	s.sections = slices.Insert(s.sections, index, sec)
	s.batch.insertSection(index, sec.NumberOfItems())
}

// SetItems replaces the items of the section at index. The batch is
// delivered as a full reload.
func (s *Storage) SetItems(items []any, sectionIndex int) {
	s.beginBatch(false)
	defer s.endBatch()

	if sectionIndex < 0 {
		s.logger.Warn("Cannot set items of negative section", zap.Int("section", sectionIndex))
		return
	}
	s.ensureSection(sectionIndex).SetItems(items)
	s.batch.requireReload()
}

// SetItemsForAllSections replaces the items of section i with items[i],
// creating sections as needed. Sections past len(items) are left alone. The
// batch is delivered as a full reload.
func (s *Storage) SetItemsForAllSections(items [][]any) {
	s.beginBatch(false)
	defer s.endBatch()

	for i, sectionItems := range items {
		s.ensureSection(i).SetItems(sectionItems)
	}
	s.batch.requireReload()
}

// DeleteSections removes the sections at indices. Missing sections are
// logged and skipped.
func (s *Storage) DeleteSections(indices []int) {
	s.beginBatch(false)
	defer s.endBatch()

	indices = slices.Clone(indices)
	slices.Sort(indices)
	indices = slices.Compact(indices)
	for _, index := range slices.Backward(indices) {
		if index < 0 || index >= len(s.sections) {
			s.logger.Warn("Cannot delete missing section", zap.Int("section", index))
			continue
		}
		s.sections = slices.Delete(s.sections, index, index+1)
		s.batch.deleteSection(index)
	}
}

// ensureSection returns the section at index, appending empty sections up to
// it when needed. It must run inside a batch.
func (s *Storage) ensureSection(index int) *section.Section {
	for len(s.sections) <= index {
		s.sections = append(s.sections, section.New())
		s.batch.appendSection()
	}
	return s.sections[index]
}

func absent(model any) bool {
	if model == nil {
		return true
	}
	v := reflect.ValueOf(model)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
