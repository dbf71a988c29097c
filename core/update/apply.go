package update

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInconsistent is returned by Apply when an update cannot be replayed
// against the given snapshot.
var ErrInconsistent = errors.New("inconsistent update")

// Apply replays u against the pre-batch snapshot before and returns the
// resulting sections. Contents of inserted, moved and updated positions are
// read from after, which is addressed in post-batch coordinates; it must
// report false for positions it does not know.
//
// Apply never modifies before. It follows the order documented on the
// package: deletes first in pre-batch coordinates, then section inserts,
// then item inserts and moves in ascending post-batch order, then updates.
func Apply[T any](before [][]T, u *Update, after func(IndexPath) (T, bool)) ([][]T, error) {
	deletedSections := make(map[int]bool, len(u.DeletedSections))
	for _, s := range u.DeletedSections {
		if s < 0 || s >= len(before) {
			return nil, fmt.Errorf("%w: deleted section %d out of range", ErrInconsistent, s)
		}
		deletedSections[s] = true
	}

	movedSections := make(map[int]bool, len(u.MovedSections))
	for _, m := range u.MovedSections {
		if m.From < 0 || m.From >= len(before) || deletedSections[m.From] {
			return nil, fmt.Errorf("%w: moved section %d is not available", ErrInconsistent, m.From)
		}
		movedSections[m.From] = true
	}

	removed := make(map[IndexPath]bool, len(u.DeletedItems)+len(u.MovedItems))
	markRemoved := func(p IndexPath, what string) error {
		if p.Section < 0 || p.Section >= len(before) || deletedSections[p.Section] {
			return fmt.Errorf("%w: %s %s addresses an unavailable section", ErrInconsistent, what, p)
		}
		if p.Item < 0 || p.Item >= len(before[p.Section]) {
			return fmt.Errorf("%w: %s %s out of range", ErrInconsistent, what, p)
		}
		if removed[p] {
			return fmt.Errorf("%w: %s %s removed twice", ErrInconsistent, what, p)
		}
		removed[p] = true
		return nil
	}
	for _, p := range u.DeletedItems {
		if err := markRemoved(p, "deleted item"); err != nil {
			return nil, err
		}
	}
	for _, m := range u.MovedItems {
		if err := markRemoved(m.From, "moved item"); err != nil {
			return nil, err
		}
	}

	survivors := make([][]T, len(before))
	for s, items := range before {
		if deletedSections[s] {
			continue
		}
		kept := make([]T, 0, len(items))
		for i, v := range items {
			if !removed[Path(s, i)] {
				kept = append(kept, v)
			}
		}
		survivors[s] = kept
	}

	result := make([][]T, 0, len(before)+len(u.InsertedSections))
	for s := range before {
		if !deletedSections[s] && !movedSections[s] {
			result = append(result, survivors[s])
		}
	}

	type sectionSlot struct {
		at    int
		items []T
	}
	slots := make([]sectionSlot, 0, len(u.InsertedSections)+len(u.MovedSections))
	for _, s := range u.InsertedSections {
		slots = append(slots, sectionSlot{at: s, items: []T{}})
	}
	for _, m := range u.MovedSections {
		slots = append(slots, sectionSlot{at: m.To, items: survivors[m.From]})
	}
	slices.SortFunc(slots, func(a, b sectionSlot) int { return cmp.Compare(a.at, b.at) })
	for i, slot := range slots {
		if i > 0 && slots[i-1].at == slot.at {
			return nil, fmt.Errorf("%w: section %d inserted twice", ErrInconsistent, slot.at)
		}
		if slot.at < 0 || slot.at > len(result) {
			return nil, fmt.Errorf("%w: inserted section %d out of range", ErrInconsistent, slot.at)
		}
		result = slices.Insert(result, slot.at, slot.items)
	}

	targets := slices.Clone(u.InsertedItems)
	for _, m := range u.MovedItems {
		targets = append(targets, m.To)
	}
	slices.SortFunc(targets, IndexPath.Compare)
	for i, p := range targets {
		if i > 0 && targets[i-1] == p {
			return nil, fmt.Errorf("%w: item %s inserted twice", ErrInconsistent, p)
		}
		if p.Section < 0 || p.Section >= len(result) || p.Item < 0 || p.Item > len(result[p.Section]) {
			return nil, fmt.Errorf("%w: inserted item %s out of range", ErrInconsistent, p)
		}
		v, ok := after(p)
		if !ok {
			return nil, fmt.Errorf("%w: no content for inserted item %s", ErrInconsistent, p)
		}
		result[p.Section] = slices.Insert(result[p.Section], p.Item, v)
	}

	for _, p := range u.UpdatedItems {
		if p.Section < 0 || p.Section >= len(result) || p.Item < 0 || p.Item >= len(result[p.Section]) {
			return nil, fmt.Errorf("%w: updated item %s out of range", ErrInconsistent, p)
		}
		v, ok := after(p)
		if !ok {
			return nil, fmt.Errorf("%w: no content for updated item %s", ErrInconsistent, p)
		}
		result[p.Section][p.Item] = v
	}

	for _, s := range u.UpdatedSections {
		if s < 0 || s >= len(result) {
			return nil, fmt.Errorf("%w: updated section %d out of range", ErrInconsistent, s)
		}
	}
	return result, nil
}
