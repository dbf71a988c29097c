package memory

import (
	"slices"

	"model-storage/core/section"
	"model-storage/core/update"
)

// itemTrace records where a current item was at batch start.
type itemTrace struct {
	origin   update.IndexPath
	known    bool
	moved    bool
	reloaded bool
}

// sectionTrace records where a current section was at batch start. Items are
// only traced once the section sees an item mutation; until then the section
// holds exactly its pre-batch items.
type sectionTrace struct {
	origin  int
	moved   bool
	updated bool
	touched bool
	items   []itemTrace
}

type batch struct {
	explicit  bool
	reload    bool
	preCounts []int
	traces    []*sectionTrace
}

func newBatch(sections []*section.Section) *batch {
	b := &batch{
		preCounts: make([]int, len(sections)),
		traces:    make([]*sectionTrace, len(sections)),
	}
	for i, s := range sections {
		b.preCounts[i] = s.NumberOfItems()
		b.traces[i] = &sectionTrace{origin: i}
	}
	return b
}

func (b *batch) requireReload() {
	b.reload = true
	b.traces = nil
}

// section returns the trace of the current section at index with its items
// materialised.
func (b *batch) section(index int) *sectionTrace {
	t := b.traces[index]
	if !t.touched {
		t.touched = true
		t.items = make([]itemTrace, b.preCounts[t.origin])
		for i := range t.items {
			t.items[i] = itemTrace{origin: update.Path(t.origin, i), known: true}
		}
	}
	return t
}

func (b *batch) appendSection() {
	if b.reload {
		return
	}
	b.traces = append(b.traces, &sectionTrace{origin: -1, touched: true})
}

func (b *batch) insertSection(index, items int) {
	if b.reload {
		return
	}
	b.traces = slices.Insert(b.traces, index, &sectionTrace{
		origin:  -1,
		touched: true,
		items:   make([]itemTrace, items),
	})
}

func (b *batch) deleteSection(index int) {
	if b.reload {
		return
	}
	b.traces = slices.Delete(b.traces, index, index+1)
}

func (b *batch) moveSection(from, to int) {
	if b.reload {
		return
	}
	t := b.traces[from]
	if t.origin >= 0 {
		t.moved = true
	}
	b.traces = slices.Delete(b.traces, from, from+1)
	b.traces = slices.Insert(b.traces, to, t)
}

func (b *batch) updateSection(index int) {
	if b.reload {
		return
	}
	b.traces[index].updated = true
}

func (b *batch) insertItem(p update.IndexPath) {
	b.placeItem(p, itemTrace{})
}

func (b *batch) placeItem(p update.IndexPath, it itemTrace) {
	if b.reload {
		return
	}
	t := b.section(p.Section)
	t.items = slices.Insert(t.items, p.Item, it)
}

func (b *batch) removeItem(p update.IndexPath) itemTrace {
	if b.reload {
		return itemTrace{}
	}
	t := b.section(p.Section)
	it := t.items[p.Item]
	t.items = slices.Delete(t.items, p.Item, p.Item+1)
	return it
}

func (b *batch) reloadItem(p update.IndexPath) {
	if b.reload {
		return
	}
	b.section(p.Section).items[p.Item].reloaded = true
}

func (b *batch) moveItem(from, to update.IndexPath) {
	if b.reload {
		return
	}
	it := b.removeItem(from)
	if it.known {
		it.moved = true
	}
	b.placeItem(to, it)
}

// build turns the trace into the batch's change descriptor.
func (b *batch) build() *update.Update {
	u := update.New()

	alive := make([]bool, len(b.preCounts))
	for j, t := range b.traces {
		if t.origin < 0 {
			u.InsertSection(j)
			continue
		}
		alive[t.origin] = true
		if t.moved {
			u.MoveSection(t.origin, j)
		}
		if t.updated {
			u.UpdateSection(j)
		}
	}
	for p, ok := range alive {
		if !ok {
			u.DeleteSection(p)
		}
	}

	accounted := make(map[update.IndexPath]bool)
	for j, t := range b.traces {
		if !t.touched {
			continue
		}
		for i, it := range t.items {
			at := update.Path(j, i)
			switch {
			case !it.known:
				u.InsertItem(at)
			case it.moved || it.origin.Section != t.origin:
				// A move needs both ends to survive the batch. Otherwise the
				// item shows up as an insert, and its origin as a delete
				// when the origin section is still there.
				if t.origin >= 0 && alive[it.origin.Section] {
					u.MoveItem(it.origin, at)
					accounted[it.origin] = true
				} else {
					u.InsertItem(at)
				}
			default:
				accounted[it.origin] = true
				if it.reloaded {
					u.UpdateItem(at)
				}
			}
		}
	}
	for _, t := range b.traces {
		if !t.touched || t.origin < 0 {
			continue
		}
		for i := range b.preCounts[t.origin] {
			if p := update.Path(t.origin, i); !accounted[p] {
				u.DeleteItem(p)
			}
		}
	}

	u.Collapse()
	return u
}
