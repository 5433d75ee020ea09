// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck persists decks between pipeline steps: YAML deck files that
// the user edits by hand between parsing and printing, and a local SQLite
// library for decks worth keeping.
package deck

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/flashdeck/pkg/types"
)

// File is the on-disk representation of a parsed deck. The user can open
// it in any editor, fix fronts and backs, reorder or delete cards, and
// feed it back to the build step.
type File struct {
	Deck    types.Deck `yaml:"deck"`
	Summary Summary    `yaml:"summary"`
}

// Summary records where the cards came from and when.
type Summary struct {
	// Source names the input: a filename, "stdin", "ocr", or "paste".
	Source string `yaml:"source,omitempty"`

	// Rows is the number of logical rows the parser saw.
	Rows int `yaml:"rows"`

	Timestamp time.Time `yaml:"timestamp"`
}

// WriteFile saves a deck and its parse summary as YAML.
func WriteFile(path string, deck types.Deck, summary Summary) error {
	data, err := yaml.Marshal(File{Deck: deck, Summary: summary})
	if err != nil {
		return fmt.Errorf("encoding deck file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing deck file: %w", err)
	}
	return nil
}

// ReadFile loads a deck file written by WriteFile (or by hand).
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading deck file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing deck file %s: %w", path, err)
	}
	return f, nil
}
