package fetched

import (
	"slices"

	"model-storage/core/filter"
	"model-storage/core/notify"
	"model-storage/core/section"
	"model-storage/core/update"
)

// SectionInfo is one section of a controller's current result.
type SectionInfo struct {
	Name    string
	Objects []any
}

// Controller exposes the current result of an external change-tracking
// source.
type Controller interface {
	Sections() []SectionInfo
}

// Storage is a read-only storage over a Controller. Feed the controller's
// events to Listener so the registered notifier learns about changes.
type Storage struct {
	controller Controller
	adapter    *Adapter
	nameKinds  []string
	filters    *filter.Registry
}

// NewStorage creates a storage reading from c.
func NewStorage(c Controller, opts ...Option) *Storage {
	o := newOptions(opts)
	return &Storage{
		controller: c,
		adapter:    NewAdapter(nil, opts...),
		nameKinds:  o.nameKinds,
		filters:    filter.NewRegistry(),
	}
}

// Listener returns the event sink the controller must report to.
func (s *Storage) Listener() Listener {
	return s.adapter
}

// SetNotifier registers the observer of the controller's changes.
func (s *Storage) SetNotifier(n notify.Notifier) {
	s.adapter.SetNotifier(n)
}

// ClearNotifier removes the observer.
func (s *Storage) ClearNotifier() {
	s.adapter.SetNotifier(nil)
}

// Sections builds a section for each controller section.
func (s *Storage) Sections() []*section.Section {
	infos := s.controller.Sections()
	out := make([]*section.Section, len(infos))
	for i, info := range infos {
		out[i] = s.build(info)
	}
	return out
}

// NumberOfSections returns the controller's section count.
func (s *Storage) NumberOfSections() int {
	return len(s.controller.Sections())
}

// Section returns the section at index.
func (s *Storage) Section(index int) (*section.Section, bool) {
	infos := s.controller.Sections()
	if index < 0 || index >= len(infos) {
		return nil, false
	}
	return s.build(infos[index]), true
}

// ItemAt returns the object at p.
func (s *Storage) ItemAt(p update.IndexPath) (any, bool) {
	infos := s.controller.Sections()
	if p.Section < 0 || p.Section >= len(infos) {
		return nil, false
	}
	objects := infos[p.Section].Objects
	if p.Item < 0 || p.Item >= len(objects) {
		return nil, false
	}
	return objects[p.Item], true
}

// ItemsInSection returns the objects of the section at index.
func (s *Storage) ItemsInSection(index int) ([]any, bool) {
	infos := s.controller.Sections()
	if index < 0 || index >= len(infos) {
		return nil, false
	}
	return slices.Clone(infos[index].Objects), true
}

// IndexPathOf returns the position of item, compared with section.Same.
func (s *Storage) IndexPathOf(item any) (update.IndexPath, bool) {
	for si, info := range s.controller.Sections() {
		for i, obj := range info.Objects {
			if section.Same(obj, item) {
				return update.Path(si, i), true
			}
		}
	}
	return update.IndexPath{}, false
}

// SupplementaryModel returns the section name for the configured kinds and
// nil for any other kind.
func (s *Storage) SupplementaryModel(kind string, index int) any {
	if !slices.Contains(s.nameKinds, kind) {
		return nil
	}
	infos := s.controller.Sections()
	if index < 0 || index >= len(infos) {
		return nil
	}
	return infos[index].Name
}

// Snapshot returns the objects of every section.
func (s *Storage) Snapshot() [][]any {
	infos := s.controller.Sections()
	out := make([][]any, len(infos))
	for i, info := range infos {
		out[i] = slices.Clone(info.Objects)
	}
	return out
}

// Filters returns the storage's filter registry.
func (s *Storage) Filters() *filter.Registry {
	return s.filters
}

// ApplyFilter returns a read-only view of the objects accepted by the
// registered predicates.
func (s *Storage) ApplyFilter(query string, scope int) *filter.View {
	return s.filters.Apply(s, query, scope)
}

func (s *Storage) build(info SectionInfo) *section.Section {
	sec := section.New()
	sec.SetItems(info.Objects)
	for _, kind := range s.nameKinds {
		sec.SetSupplementary(kind, info.Name)
	}
	return sec
}
