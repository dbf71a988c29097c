package filter

import (
	"model-storage/core/section"
	"model-storage/core/update"
)

// View is the read-only result of Registry.Apply.
type View struct {
	sections []*section.Section
}

// Sections returns the view's sections. They must not be mutated.
func (v *View) Sections() []*section.Section {
	out := make([]*section.Section, len(v.sections))
	copy(out, v.sections)
	return out
}

// NumberOfSections returns the number of non-empty sections in the view.
func (v *View) NumberOfSections() int {
	return len(v.sections)
}

// Section returns the view section at index.
func (v *View) Section(index int) (*section.Section, bool) {
	if index < 0 || index >= len(v.sections) {
		return nil, false
	}
	return v.sections[index], true
}

// ItemAt returns the item at p in view coordinates.
func (v *View) ItemAt(p update.IndexPath) (any, bool) {
	sec, ok := v.Section(p.Section)
	if !ok {
		return nil, false
	}
	return sec.Item(p.Item)
}

// ItemsInSection returns the items of the view section at index.
func (v *View) ItemsInSection(index int) ([]any, bool) {
	sec, ok := v.Section(index)
	if !ok {
		return nil, false
	}
	return sec.Items(), true
}

// SupplementaryModel returns the model of kind carried over to the view
// section at index.
func (v *View) SupplementaryModel(kind string, index int) any {
	sec, ok := v.Section(index)
	if !ok {
		return nil
	}
	return sec.Supplementary(kind)
}

// Snapshot returns the items of every view section.
func (v *View) Snapshot() [][]any {
	out := make([][]any, len(v.sections))
	for i, sec := range v.sections {
		out[i] = sec.Items()
	}
	return out
}
