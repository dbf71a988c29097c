// Package memory provides an in-memory sectioned storage that computes a
// change descriptor for every batch of mutations.
//
// Storage holds an ordered list of sections (see core/section). All changes
// go through its mutation primitives: AddItem, InsertItem, RemoveItems,
// ReplaceItem, ReloadItem, MoveItem, MoveSection, SetItems, DeleteSections,
// SetSupplementaryModel and friends. Each primitive mutates the sections
// and records what happened in the in-flight batch.
//
// # Batches
//
// Every primitive runs as its own implicit batch, so a single AddItem call is
// delivered to the notifier as soon as it returns. Group several primitives
// with BeginUpdates or PerformUpdates to receive one coalesced delivery:
//
//	err := st.PerformUpdates(func() error {
//	    st.AddItem("a", 0)
//	    st.RemoveItem("b")
//	    return nil
//	})
//
// Scopes nest and only the outermost one delivers. An explicit scope always
// delivers exactly once, even when nothing changed; an implicit batch that
// changed nothing is dropped.
//
// # Change computation
//
// A batch keeps a provenance trace next to the sections: each section knows
// the index it had when the batch started, and each section touched by an
// item mutation knows where each of its items came from. When the batch ends
// the trace is turned into an update.Update whose deletes use pre-batch
// positions and whose inserts, updates and move destinations use post-batch
// positions. Because the trace is derived from the final state, index shifts
// caused by earlier mutations in the same batch never leak into the result.
//
// An item inserted and removed again inside one batch cancels out and leaves
// no entry. A delete and an insert that land on the same slot collapse into
// an update (see update.Update.Collapse).
//
// Operations that replace whole sections (SetItems, SetItemsForAllSections,
// RemoveAllItems, SetSupplementaries) are not described incrementally: the
// batch they belong to is delivered as OnReloadRequired.
//
// # Addressing misses
//
// Primitives never return errors. Unknown items, and indices outside the
// sections, are logged at warn level and ignored without touching the storage
// or the in-flight batch.
//
// # Concurrency
//
// Storage is not safe for concurrent use. Callers serialise access, as the
// lists feature does with a mutex around its storage.
package memory
