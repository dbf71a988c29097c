// Package fetched adapts an external change-tracking controller to the
// storage and notification contracts of this module.
//
// Some data sources track changes on their own: they execute a query, keep
// the results grouped in sections, and report what changed as a stream of
// events bracketed by BeginChanges and EndChanges. Adapter consumes that
// stream through the Listener interface and turns every bracket into a
// single update.Update for a notify.Notifier.
//
// # States
//
// The adapter is either Idle or Collecting. BeginChanges moves it to
// Collecting with an empty staged update. Each event is staged using the
// indices the source reports, without any correction. EndChanges delivers
// the staged update and returns to Idle; a bracket without events delivers
// nothing.
//
// The source is trusted for indices but not for the protocol. Events or
// EndChanges received while Idle, and a BeginChanges received while already
// Collecting, make the adapter discard what it has and signal a full reload.
//
// # Storage
//
// Storage is a read-only sectioned storage over a Controller. It reads
// sections and objects from the controller on every call and exposes each
// section's name as its supplementary model for the configured kinds.
package fetched
