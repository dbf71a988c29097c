// Package section provides the Section type, the leaf building block of a
// sectioned model storage.
//
// A Section is an ordered sequence of item models plus a mapping from a
// supplementary kind (for example "section-header") to a single
// supplementary model. Items are opaque references; the section never
// copies or inspects them.
//
// # Ownership
//
// Sections are owned by a storage (see core/memory and core/fetched) which
// is the only party allowed to mutate them. The mutating methods are
// exported so storages in other packages can use them, but calling them on a
// section obtained from a storage accessor bypasses change tracking and
// leaves any observer out of sync with the data.
//
// # Usage
//
//	s := section.New()
//	s.Append("a")
//	s.SetSupplementary("section-header", "Fruits")
//	fmt.Println(s.NumberOfItems(), s.Supplementary("section-header"))
package section
