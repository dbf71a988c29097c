package memory

import (
	"model-storage/core/section"
	"model-storage/core/update"

	"go.uber.org/zap"
)

// Accumulation decides how added items combine with items already in a
// section. Identity is resolved with section.Same.
type Accumulation int

const (
	// Additive appends every item.
	Additive Accumulation = iota
	// UpdateOld replaces a matching item in place and appends the rest.
	UpdateOld
	// DeleteOld removes matching items and appends every new item.
	DeleteOld
)

func (a Accumulation) String() string {
	switch a {
	case Additive:
		return "additive"
	case UpdateOld:
		return "update-old"
	case DeleteOld:
		return "delete-old"
	default:
		return "unknown"
	}
}

// AccumulateItems adds items to the section at index following strategy.
// Missing sections are created as with AddItems.
func (s *Storage) AccumulateItems(items []any, sectionIndex int, strategy Accumulation) {
	if sectionIndex < 0 {
		s.logger.Warn("Cannot add items to negative section", zap.Int("section", sectionIndex))
		return
	}

	s.beginBatch(false)
	defer s.endBatch()

	switch strategy {
	case Additive:
		for _, item := range items {
			s.addItem(item, sectionIndex)
		}
	case UpdateOld:
		for _, item := range items {
			if i, ok := s.indexInSection(sectionIndex, item); ok {
				s.sections[sectionIndex].Replace(i, item)
				s.batch.reloadItem(update.Path(sectionIndex, i))
				continue
			}
			s.addItem(item, sectionIndex)
		}
	case DeleteOld:
		var stale []update.IndexPath
		for _, item := range items {
			if i, ok := s.indexInSection(sectionIndex, item); ok {
				stale = append(stale, update.Path(sectionIndex, i))
			}
		}
		s.removeAt(stale)
		for _, item := range items {
			s.addItem(item, sectionIndex)
		}
	default:
		s.logger.Warn("Unknown accumulation strategy", zap.Stringer("strategy", strategy))
	}
}

func (s *Storage) indexInSection(sectionIndex int, item any) (int, bool) {
	sec, ok := s.Section(sectionIndex)
	if !ok {
		return 0, false
	}
	for i, existing := range sec.Items() {
		if section.Same(existing, item) {
			return i, true
		}
	}
	return 0, false
}
