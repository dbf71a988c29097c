package update

import (
	"cmp"
	"fmt"
	"slices"
)

// Target tells whether an Operation addresses a section or an item.
type Target string

const (
	// TargetSection addresses a whole section; only From.Section (and To.Section for moves) is meaningful.
	TargetSection Target = "section"
	// TargetItem addresses a single item.
	TargetItem Target = "item"
)

// Operation is a single flattened change, as returned by Update.Operations.
type Operation struct {
	Type   ChangeType `json:"type"`
	Target Target     `json:"target"`
	// From is the addressed position. For deletes and move sources it is a
	// pre-batch position, otherwise a post-batch one.
	From IndexPath `json:"from"`
	// To is the post-batch destination of a move.
	To IndexPath `json:"to,omitempty"`
}

func (o Operation) String() string {
	switch {
	case o.Target == TargetSection && o.Type == ChangeMove:
		return fmt.Sprintf("move section %d -> %d", o.From.Section, o.To.Section)
	case o.Target == TargetSection:
		return fmt.Sprintf("%s section %d", o.Type, o.From.Section)
	case o.Type == ChangeMove:
		return fmt.Sprintf("move item %s -> %s", o.From, o.To)
	default:
		return fmt.Sprintf("%s item %s", o.Type, o.From)
	}
}

// Operations flattens u into the order a list view must apply it in:
// section deletes and item deletes from the highest index down, then section
// inserts and section moves from the lowest destination up, then item
// inserts, moves and updates from the lowest position up, and finally
// section updates.
func (u *Update) Operations() []Operation {
	ops := make([]Operation, 0, u.count())

	for _, s := range slices.Backward(u.DeletedSections) {
		ops = append(ops, Operation{Type: ChangeDelete, Target: TargetSection, From: Path(s, 0)})
	}
	for _, p := range slices.Backward(u.DeletedItems) {
		ops = append(ops, Operation{Type: ChangeDelete, Target: TargetItem, From: p})
	}

	sectionInserts := make([]Operation, 0, len(u.InsertedSections)+len(u.MovedSections))
	for _, s := range u.InsertedSections {
		sectionInserts = append(sectionInserts, Operation{Type: ChangeInsert, Target: TargetSection, From: Path(s, 0)})
	}
	for _, m := range u.MovedSections {
		sectionInserts = append(sectionInserts, Operation{Type: ChangeMove, Target: TargetSection, From: Path(m.From, 0), To: Path(m.To, 0)})
	}
	slices.SortStableFunc(sectionInserts, func(a, b Operation) int {
		return cmp.Compare(destination(a).Section, destination(b).Section)
	})
	ops = append(ops, sectionInserts...)

	itemChanges := make([]Operation, 0, len(u.InsertedItems)+len(u.MovedItems)+len(u.UpdatedItems))
	for _, p := range u.InsertedItems {
		itemChanges = append(itemChanges, Operation{Type: ChangeInsert, Target: TargetItem, From: p})
	}
	for _, m := range u.MovedItems {
		itemChanges = append(itemChanges, Operation{Type: ChangeMove, Target: TargetItem, From: m.From, To: m.To})
	}
	for _, p := range u.UpdatedItems {
		itemChanges = append(itemChanges, Operation{Type: ChangeUpdate, Target: TargetItem, From: p})
	}
	slices.SortStableFunc(itemChanges, func(a, b Operation) int {
		return destination(a).Compare(destination(b))
	})
	ops = append(ops, itemChanges...)

	for _, s := range u.UpdatedSections {
		ops = append(ops, Operation{Type: ChangeUpdate, Target: TargetSection, From: Path(s, 0)})
	}
	return ops
}

// Collapse turns a delete and an insert that address the same slot into a
// single in-place update. A pre-batch position p and a post-batch position p
// address the same slot when the section keeps its index across the batch and
// as many other items were removed in front of p as were inserted in front of
// it. Pairs that do not line up are kept as they are. Collapse is skipped
// entirely while sections are being moved. It returns the number of pairs
// collapsed.
func (u *Update) Collapse() int {
	if len(u.MovedSections) > 0 {
		return 0
	}
	collapsed := 0
	for i := 0; i < len(u.DeletedItems); {
		p := u.DeletedItems[i]
		if !u.slotLinesUp(p) {
			i++
			continue
		}
		u.DeletedItems = deleteAt(u.DeletedItems, i)
		u.InsertedItems = removeSorted(u.InsertedItems, p, IndexPath.Compare)
		u.UpdateItem(p)
		collapsed++
	}
	return collapsed
}

func (u *Update) slotLinesUp(p IndexPath) bool {
	if !containsSorted(u.InsertedItems, p, IndexPath.Compare) {
		return false
	}
	s := p.Section
	if containsSorted(u.DeletedSections, s, cmp.Compare[int]) || containsSorted(u.InsertedSections, s, cmp.Compare[int]) {
		return false
	}
	if countBelow(u.DeletedSections, s) != countBelow(u.InsertedSections, s) {
		return false
	}

	removedBefore, addedBefore := 0, 0
	for _, d := range u.DeletedItems {
		if d.Section == s && d.Item < p.Item {
			removedBefore++
		}
	}
	for _, ins := range u.InsertedItems {
		if ins.Section == s && ins.Item < p.Item {
			addedBefore++
		}
	}
	for _, m := range u.MovedItems {
		if m.From.Section == s && m.From.Item < p.Item {
			removedBefore++
		}
		if m.To.Section == s && m.To.Item < p.Item {
			addedBefore++
		}
		if m.To == p {
			return false
		}
	}
	return removedBefore == addedBefore
}

func (u *Update) count() int {
	return len(u.DeletedSections) + len(u.InsertedSections) + len(u.UpdatedSections) + len(u.MovedSections) +
		len(u.DeletedItems) + len(u.InsertedItems) + len(u.UpdatedItems) + len(u.MovedItems)
}

func countBelow(sorted []int, v int) int {
	i, _ := slices.BinarySearch(sorted, v)
	return i
}

func destination(o Operation) IndexPath {
	if o.Type == ChangeMove {
		return o.To
	}
	return o.From
}
