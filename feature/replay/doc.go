// Package replay runs YAML mutation scripts against an in-memory storage.
//
// Each batch of a script is applied inside one explicit update scope, so it
// yields exactly one delivery. The runner reports the flattened operations
// of every delivered update and, when asked to verify, replays the update
// over the pre-batch content to check it reproduces the storage. The replay
// command exposes this on the command line.
package replay
