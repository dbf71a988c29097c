// Package update describes the changes a batch of storage mutations made.
//
// An Update is the change descriptor handed to a notifier once a batch ends. It
// aggregates section and item changes into sorted, duplicate-free sets that use
// two coordinate systems:
//   - Deleted sections, deleted items and move sources refer to positions
//     before the batch started.
//   - Inserted sections, inserted items, updated items, updated sections and
//     move destinations refer to positions after the batch finished.
//
// # Application Order
//
// Consumers that animate a list must apply an Update in a fixed order to stay
// consistent with standard list-view semantics:
//
//  1. Section deletes
//  2. Item deletes
//  3. Section inserts (and section move destinations)
//  4. Item inserts, moves and updates
//
// Operations returns the changes flattened in that order, and Apply replays an
// Update against a pre-batch snapshot, which is how the storage tests prove
// that a descriptor is internally consistent.
//
// # Usage
//
//	u := update.New()
//	u.DeleteItem(update.Path(0, 2))
//	u.InsertItem(update.Path(0, 0))
//	for _, op := range u.Operations() {
//	    fmt.Println(op)
//	}
package update
