package update

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ChangeType represents the kind of change applied to a section or an item.
type ChangeType string

const (
	// ChangeInsert marks a newly inserted section or item.
	ChangeInsert ChangeType = "insert"
	// ChangeDelete marks a removed section or item.
	ChangeDelete ChangeType = "delete"
	// ChangeUpdate marks an in-place reload of a section or item.
	ChangeUpdate ChangeType = "update"
	// ChangeMove marks a section or item moved from one position to another.
	ChangeMove ChangeType = "move"
)

// IndexPath addresses an item by section and item index.
type IndexPath struct {
	Section int `json:"section" yaml:"section"`
	Item    int `json:"item" yaml:"item"`
}

// Path is shorthand for IndexPath{Section: section, Item: item}.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

// Compare orders index paths by section first, then by item.
func (p IndexPath) Compare(o IndexPath) int {
	if c := cmp.Compare(p.Section, o.Section); c != 0 {
		return c
	}
	return cmp.Compare(p.Item, o.Item)
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// ItemMove is an item moved from a pre-batch position to a post-batch position.
type ItemMove struct {
	From IndexPath `json:"from"`
	To   IndexPath `json:"to"`
}

// SectionMove is a section moved from a pre-batch index to a post-batch index.
type SectionMove struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Update is the change descriptor for one completed batch.
// All slices are kept sorted and free of duplicates by the mutating methods;
// build an Update through them rather than appending to the fields directly.
type Update struct {
	// DeletedSections holds pre-batch indices of removed sections.
	DeletedSections []int `json:"deleted_sections,omitempty"`
	// InsertedSections holds post-batch indices of new sections.
	InsertedSections []int `json:"inserted_sections,omitempty"`
	// UpdatedSections holds post-batch indices of sections whose
	// supplementary models changed.
	UpdatedSections []int `json:"updated_sections,omitempty"`
	// MovedSections holds section moves, sorted by source index.
	MovedSections []SectionMove `json:"moved_sections,omitempty"`

	// DeletedItems holds pre-batch positions of removed items.
	DeletedItems []IndexPath `json:"deleted_items,omitempty"`
	// InsertedItems holds post-batch positions of new items.
	InsertedItems []IndexPath `json:"inserted_items,omitempty"`
	// UpdatedItems holds post-batch positions of items reloaded in place.
	UpdatedItems []IndexPath `json:"updated_items,omitempty"`
	// MovedItems holds item moves, sorted by source position.
	MovedItems []ItemMove `json:"moved_items,omitempty"`
}

// New returns an empty Update.
func New() *Update {
	return &Update{}
}

// IsEmpty reports whether the update carries no change at all.
func (u *Update) IsEmpty() bool {
	return len(u.DeletedSections) == 0 &&
		len(u.InsertedSections) == 0 &&
		len(u.UpdatedSections) == 0 &&
		len(u.MovedSections) == 0 &&
		len(u.DeletedItems) == 0 &&
		len(u.InsertedItems) == 0 &&
		len(u.UpdatedItems) == 0 &&
		len(u.MovedItems) == 0
}

// DeleteSection records the removal of the pre-batch section at index.
func (u *Update) DeleteSection(index int) {
	u.DeletedSections = addSorted(u.DeletedSections, index, cmp.Compare[int])
}

// InsertSection records a new section at the post-batch index.
func (u *Update) InsertSection(index int) {
	u.InsertedSections = addSorted(u.InsertedSections, index, cmp.Compare[int])
}

// UpdateSection records a supplementary-only change of the post-batch section at index.
func (u *Update) UpdateSection(index int) {
	u.UpdatedSections = addSorted(u.UpdatedSections, index, cmp.Compare[int])
}

// MoveSection records a section move. A later move of the same source replaces the earlier one.
func (u *Update) MoveSection(from, to int) {
	m := SectionMove{From: from, To: to}
	i, found := slices.BinarySearchFunc(u.MovedSections, m, compareSectionMoves)
	if found {
		u.MovedSections[i] = m
		return
	}
	u.MovedSections = slices.Insert(u.MovedSections, i, m)
}

// DeleteItem records the removal of the item at the pre-batch position p.
func (u *Update) DeleteItem(p IndexPath) {
	u.DeletedItems = addSorted(u.DeletedItems, p, IndexPath.Compare)
}

// InsertItem records a new item at the post-batch position p.
func (u *Update) InsertItem(p IndexPath) {
	u.InsertedItems = addSorted(u.InsertedItems, p, IndexPath.Compare)
}

// UpdateItem records an in-place reload at the post-batch position p.
func (u *Update) UpdateItem(p IndexPath) {
	u.UpdatedItems = addSorted(u.UpdatedItems, p, IndexPath.Compare)
}

// MoveItem records an item move. A later move of the same source replaces the earlier one.
func (u *Update) MoveItem(from, to IndexPath) {
	m := ItemMove{From: from, To: to}
	i, found := slices.BinarySearchFunc(u.MovedItems, m, compareItemMoves)
	if found {
		u.MovedItems[i] = m
		return
	}
	u.MovedItems = slices.Insert(u.MovedItems, i, m)
}

// Clone returns a deep copy of u.
func (u *Update) Clone() *Update {
	return &Update{
		DeletedSections:  slices.Clone(u.DeletedSections),
		InsertedSections: slices.Clone(u.InsertedSections),
		UpdatedSections:  slices.Clone(u.UpdatedSections),
		MovedSections:    slices.Clone(u.MovedSections),
		DeletedItems:     slices.Clone(u.DeletedItems),
		InsertedItems:    slices.Clone(u.InsertedItems),
		UpdatedItems:     slices.Clone(u.UpdatedItems),
		MovedItems:       slices.Clone(u.MovedItems),
	}
}

func (u *Update) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deleted sections: %v\n", u.DeletedSections)
	fmt.Fprintf(&b, "Inserted sections: %v\n", u.InsertedSections)
	fmt.Fprintf(&b, "Updated sections: %v\n", u.UpdatedSections)
	fmt.Fprintf(&b, "Moved sections: %v\n", u.MovedSections)
	fmt.Fprintf(&b, "Deleted items: %v\n", u.DeletedItems)
	fmt.Fprintf(&b, "Inserted items: %v\n", u.InsertedItems)
	fmt.Fprintf(&b, "Updated items: %v\n", u.UpdatedItems)
	fmt.Fprintf(&b, "Moved items: %v\n", u.MovedItems)
	return b.String()
}

func addSorted[T any](s []T, v T, compare func(a, b T) int) []T {
	i, found := slices.BinarySearchFunc(s, v, compare)
	if found {
		return s
	}
	return slices.Insert(s, i, v)
}

func removeSorted[T any](s []T, v T, compare func(a, b T) int) []T {
	i, found := slices.BinarySearchFunc(s, v, compare)
	if !found {
		return s
	}
	return deleteAt(s, i)
}

// deleteAt removes s[i] and keeps an emptied set nil so that updates compare
// equal regardless of how they were built.
func deleteAt[T any](s []T, i int) []T {
	s = slices.Delete(s, i, i+1)
	if len(s) == 0 {
		return nil
	}
	return s
}

func containsSorted[T any](s []T, v T, compare func(a, b T) int) bool {
	_, found := slices.BinarySearchFunc(s, v, compare)
	return found
}

func compareSectionMoves(a, b SectionMove) int {
	return cmp.Compare(a.From, b.From)
}

func compareItemMoves(a, b ItemMove) int {
	return a.From.Compare(b.From)
}
