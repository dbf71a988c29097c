package lists

import (
	"errors"
	"fmt"

	"model-storage/core/notify"
	"model-storage/core/update"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNotFound is returned when an entry, position or section does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest is returned for malformed input.
	ErrBadRequest = errors.New("bad request")
	// ErrStorageDisabled is returned by snapshots when no object storage is configured.
	ErrStorageDisabled = fmt.Errorf("%w: object storage is disabled", ErrBadRequest)
)

// Search scopes.
const (
	// ScopeTitle matches entries whose title contains the query.
	ScopeTitle = 0
	// ScopeFuzzy matches title and detail with a fuzzy subsequence search.
	ScopeFuzzy = 1
)

// Entry is the display model kept in the lists storage.
type Entry struct {
	ID     ulid.ULID `json:"id"`
	Title  string    `json:"title"`
	Detail string    `json:"detail,omitempty"`
}

// Equal identifies entries by ID.
func (e Entry) Equal(other any) bool {
	switch o := other.(type) {
	case Entry:
		return o.ID == e.ID
	case *Entry:
		return o != nil && o.ID == e.ID
	}
	return false
}

// Input is the client-provided content of an entry.
type Input struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

func (in Input) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	return nil
}

func (in Input) entry(id ulid.ULID) Entry {
	return Entry{ID: id, Title: in.Title, Detail: in.Detail}
}

// SectionView is one section as returned by the API.
type SectionView struct {
	Index  int     `json:"index"`
	Header any     `json:"header,omitempty"`
	Items  []Entry `json:"items"`
}

// Result is the answer to a mutation: the change delivered to the storage's
// observer plus any entries created by the call.
type Result struct {
	notify.Delivery
	Entries []Entry `json:"entries,omitempty"`
}

// Document is the JSON layout of seeds and snapshots.
type Document struct {
	Sections []DocumentSection `json:"sections"`
}

// DocumentSection is one section of a Document. Entries without an ID get
// one when the document is loaded.
type DocumentSection struct {
	Header string  `json:"header,omitempty"`
	Items  []Entry `json:"items"`
}

// MoveRequest moves the entry at From to To.
type MoveRequest struct {
	From update.IndexPath `json:"from"`
	To   update.IndexPath `json:"to"`
}

// InsertRequest inserts Entry at Path.
type InsertRequest struct {
	Path  update.IndexPath `json:"path"`
	Entry Input            `json:"entry"`
}

// RemoveRequest removes the entries with the given IDs.
type RemoveRequest struct {
	IDs []string `json:"ids"`
}

// DeleteSectionsRequest removes the sections at the given indices.
type DeleteSectionsRequest struct {
	Sections []int `json:"sections"`
}

// HeaderRequest sets the header of a section.
type HeaderRequest struct {
	Header string `json:"header"`
}

// Batch operation names.
const (
	OpAdd           = "add"
	OpInsert        = "insert"
	OpRemove        = "remove"
	OpReplace       = "replace"
	OpReload        = "reload"
	OpMove          = "move"
	OpHeader        = "header"
	OpDeleteSection = "delete_section"
)

// BatchOp is one operation of POST /lists/batch. Which fields are read
// depends on Op.
type BatchOp struct {
	Op      string           `json:"op"`
	Section int              `json:"section,omitempty"`
	Path    update.IndexPath `json:"path"`
	To      update.IndexPath `json:"to"`
	ID      string           `json:"id,omitempty"`
	Entry   Input            `json:"entry"`
	Header  string           `json:"header,omitempty"`
}

// BatchRequest is the body of POST /lists/batch.
type BatchRequest struct {
	Ops []BatchOp `json:"ops"`
}
