package memory

import (
	"model-storage/core/filter"
	"model-storage/core/notify"
	"model-storage/core/section"
	"model-storage/core/update"

	"go.uber.org/zap"
)

// Storage is an in-memory sectioned model storage.
//
// Sections returned by the accessors belong to the storage. Mutating them
// directly bypasses change tracking; use the storage primitives instead.
type Storage struct {
	sections []*section.Section
	notifier notify.Notifier
	logger   *zap.Logger
	filters  *filter.Registry

	headerKind string
	footerKind string

	depth int
	batch *batch
}

// Option configures a Storage.
type Option func(*Storage)

// WithLogger sets the logger used to report addressing misses.
func WithLogger(l *zap.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNotifier registers the observer that receives completed batches.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Storage) {
		s.notifier = n
	}
}

// WithFilters shares a filter registry with the storage.
func WithFilters(r *filter.Registry) Option {
	return func(s *Storage) {
		if r != nil {
			s.filters = r
		}
	}
}

// New creates an empty storage.
func New(opts ...Option) *Storage {
	s := &Storage{
		logger:  zap.NewNop(),
		filters: filter.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNotifier registers n as the storage's single observer, replacing any
// previous one.
func (s *Storage) SetNotifier(n notify.Notifier) {
	s.notifier = n
}

// ClearNotifier removes the registered observer. Later batches are still
// tracked but not delivered.
func (s *Storage) ClearNotifier() {
	s.notifier = nil
}

// Sections returns the current sections.
func (s *Storage) Sections() []*section.Section {
	out := make([]*section.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// NumberOfSections returns the number of sections.
func (s *Storage) NumberOfSections() int {
	return len(s.sections)
}

// Section returns the section at index.
func (s *Storage) Section(index int) (*section.Section, bool) {
	if index < 0 || index >= len(s.sections) {
		return nil, false
	}
	return s.sections[index], true
}

// ItemAt returns the item at p.
func (s *Storage) ItemAt(p update.IndexPath) (any, bool) {
	sec, ok := s.Section(p.Section)
	if !ok {
		return nil, false
	}
	return sec.Item(p.Item)
}

// ItemsInSection returns a copy of the items of the section at index.
func (s *Storage) ItemsInSection(index int) ([]any, bool) {
	sec, ok := s.Section(index)
	if !ok {
		return nil, false
	}
	return sec.Items(), true
}

// IndexPathOf returns the position of the first item identical to item.
// Identity follows section.Same.
func (s *Storage) IndexPathOf(item any) (update.IndexPath, bool) {
	for si, sec := range s.sections {
		if i := sec.IndexOf(item); i >= 0 {
			return update.Path(si, i), true
		}
	}
	return update.IndexPath{}, false
}

// SupplementaryModel returns the model of kind in the section at index.
func (s *Storage) SupplementaryModel(kind string, index int) any {
	sec, ok := s.Section(index)
	if !ok {
		return nil
	}
	return sec.Supplementary(kind)
}

// Filters returns the storage's filter registry.
func (s *Storage) Filters() *filter.Registry {
	return s.filters
}

// ApplyFilter evaluates the registered predicates against the current
// sections and returns a read-only view of the matching items.
func (s *Storage) ApplyFilter(query string, scope int) *filter.View {
	return s.filters.Apply(s, query, scope)
}

// Snapshot returns the items of every section.
func (s *Storage) Snapshot() [][]any {
	out := make([][]any, len(s.sections))
	for i, sec := range s.sections {
		out[i] = sec.Items()
	}
	return out
}
