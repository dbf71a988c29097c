package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"model-storage/core/update"

	"gopkg.in/yaml.v3"
)

// ErrUnknownOp is returned for script operations that do not exist.
var ErrUnknownOp = errors.New("unknown operation")

// Operation names accepted in scripts.
const (
	OpAdd                = "add"
	OpInsert             = "insert"
	OpRemove             = "remove"
	OpRemoveAt           = "remove_at"
	OpRemoveSectionItems = "remove_section_items"
	OpRemoveAll          = "remove_all"
	OpReplace            = "replace"
	OpReload             = "reload"
	OpMove               = "move"
	OpMoveSection        = "move_section"
	OpInsertSection      = "insert_section"
	OpSetItems           = "set_items"
	OpDeleteSections     = "delete_sections"
	OpHeader             = "header"
	OpFooter             = "footer"
)

var knownOps = map[string]bool{
	OpAdd: true, OpInsert: true, OpRemove: true, OpRemoveAt: true,
	OpRemoveSectionItems: true, OpRemoveAll: true, OpReplace: true,
	OpReload: true, OpMove: true, OpMoveSection: true, OpInsertSection: true,
	OpSetItems: true, OpDeleteSections: true, OpHeader: true, OpFooter: true,
}

// Script is a replayable sequence of storage mutations.
//
//	usage: table
//	initial:
//	  - header: Fruit
//	    items: [apple, pear]
//	batches:
//	  - name: reorder
//	    ops:
//	      - {op: move, path: {section: 0, item: 0}, to: {section: 0, item: 1}}
//	      - {op: add, items: [plum], section: 0}
type Script struct {
	// Usage selects the header and footer kinds: table or collection.
	Usage   string         `yaml:"usage"`
	Initial []InitialBlock `yaml:"initial"`
	Batches []Batch        `yaml:"batches"`
}

// InitialBlock is one section loaded before the first batch.
type InitialBlock struct {
	Header string   `yaml:"header"`
	Footer string   `yaml:"footer"`
	Items  []string `yaml:"items"`
}

// Batch groups operations delivered as one update.
type Batch struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Op is one storage primitive. Which fields are read depends on Op.
type Op struct {
	Op       string             `yaml:"op"`
	Items    []string           `yaml:"items"`
	Item     string             `yaml:"item"`
	With     string             `yaml:"with"`
	Section  int                `yaml:"section"`
	Index    int                `yaml:"index"`
	Sections []int              `yaml:"sections"`
	Path     update.IndexPath   `yaml:"path"`
	Paths    []update.IndexPath `yaml:"paths"`
	To       update.IndexPath   `yaml:"to"`
	Text     string             `yaml:"text"`
}

// Parse decodes a YAML script. Unknown fields and operations are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for bi, b := range s.Batches {
		for oi, op := range b.Ops {
			if !knownOps[op.Op] {
				return nil, fmt.Errorf("batch %d op %d: %w %q", bi, oi, ErrUnknownOp, op.Op)
			}
		}
	}
	return &s, nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return Parse(data)
}
