// Package lists exposes a sectioned in-memory storage over HTTP.
//
// Every mutation endpoint maps to one storage primitive and answers with
// the change the storage delivered to its observer, either
// {"reload": true} or {"reload": false, "update": {...}}. POST /lists/batch
// runs several operations inside one batch so the answer carries a single
// combined update.
//
// Entries are identified by ULID. Section headers use the table view or
// collection view supplementary kind depending on Config.Usage.
//
// When object storage is enabled the storage is seeded from
// Config.SeedObject at startup and POST /lists/snapshot writes the current
// content to Config.SnapshotObject.
package lists
