// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Card is one flash card: a front (term) and a back (definition).
type Card struct {
	// Front is the term side. A card with an empty front keeps its grid
	// slot but is never drawn.
	Front string `json:"front" yaml:"front"`

	// Back is the definition side. May be empty.
	Back string `json:"back,omitempty" yaml:"back,omitempty"`
}

// Printable reports whether the card produces ink on the front sheet.
func (c Card) Printable() bool {
	return strings.TrimSpace(c.Front) != ""
}

// Deck is an ordered sequence of cards together with the print metadata
// the footer template can reference.
type Deck struct {
	// Name identifies the deck in the library and in deck files.
	Name string `json:"name" yaml:"name"`

	// Subject fills the {subject} footer placeholder.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Lesson fills the {lesson} and {unit} footer placeholders.
	Lesson string `json:"lesson,omitempty" yaml:"lesson,omitempty"`

	// Cards in print order.
	Cards []Card `json:"cards" yaml:"cards"`
}

// PrintableCount returns the number of cards that will be drawn.
func (d Deck) PrintableCount() int {
	n := 0
	for _, c := range d.Cards {
		if c.Printable() {
			n++
		}
	}
	return n
}
