// Package notify defines the observer contract a storage delivers completed
// batches to.
//
// A storage holds at most one Notifier. After every batch it calls exactly
// one of its methods: OnUpdate with the finished change descriptor, or
// OnReloadRequired when the batch cannot be described incrementally.
//
// Funcs adapts plain functions to the interface and Recorder keeps every
// delivery in memory, which is what the HTTP features and most tests use.
package notify
