package section

import (
	"maps"
	"slices"
)

// Section is an ordered group of item models with keyed supplementary models.
// The zero value is an empty section ready to use.
type Section struct {
	items           []any
	supplementaries map[string]any
}

// New returns an empty section.
func New() *Section {
	return &Section{}
}

// Items returns a copy of the section's items.
func (s *Section) Items() []any {
	return slices.Clone(s.items)
}

// NumberOfItems returns the number of items in the section.
func (s *Section) NumberOfItems() int {
	return len(s.items)
}

// Item returns the item at index, or false when index is out of range.
func (s *Section) Item(index int) (any, bool) {
	if index < 0 || index >= len(s.items) {
		return nil, false
	}
	return s.items[index], true
}

// Supplementary returns the model stored under kind, or nil.
func (s *Section) Supplementary(kind string) any {
	return s.supplementaries[kind]
}

// Supplementaries returns a copy of every kind to model mapping.
func (s *Section) Supplementaries() map[string]any {
	return maps.Clone(s.supplementaries)
}

// SetSupplementary stores model under kind. A nil model clears the kind.
func (s *Section) SetSupplementary(kind string, model any) {
	if model == nil {
		delete(s.supplementaries, kind)
		return
	}
	if s.supplementaries == nil {
		s.supplementaries = make(map[string]any)
	}
	s.supplementaries[kind] = model
}

// SetItems replaces the whole item sequence.
func (s *Section) SetItems(items []any) {
	s.items = slices.Clone(items)
}

// Append adds item at the end and returns its index.
func (s *Section) Append(item any) int {
	s.items = append(s.items, item)
	return len(s.items) - 1
}

// Insert places item at index. It reports false, leaving the section
// untouched, when index is past the end.
func (s *Section) Insert(index int, item any) bool {
	if index < 0 || index > len(s.items) {
		return false
	}
	s.items = slices.Insert(s.items, index, item)
	return true
}

// Remove deletes and returns the item at index.
func (s *Section) Remove(index int) (any, bool) {
	if index < 0 || index >= len(s.items) {
		return nil, false
	}
	item := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	return item, true
}

// Replace substitutes the item at index.
func (s *Section) Replace(index int, item any) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items[index] = item
	return true
}

// IndexOf returns the index of the first item identical to item, or -1.
func (s *Section) IndexOf(item any) int {
	return slices.IndexFunc(s.items, func(candidate any) bool {
		return Same(candidate, item)
	})
}
