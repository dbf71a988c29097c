// Package feed serves database rows through a read-only fetched storage.
//
// The Controller queries the story table with GORM and groups the rows into
// one section per channel. Every refresh compares the new result with the
// previous one and reports section and object changes to the storage's
// listener, which turns them into a single update.
//
// The channel name is exposed as the section header under the table view
// and collection view header kinds.
package feed
