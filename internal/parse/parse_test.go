// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/flashdeck/pkg/types"
)

// --- SplitRows ---

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "numbered markers",
			text: "1. mitochondria - powerhouse\n2. ribosome - protein factory",
			want: []string{"mitochondria - powerhouse", "ribosome - protein factory"},
		},
		{
			name: "paren numbering",
			text: "1) alpha\n2) beta",
			want: []string{"alpha", "beta"},
		},
		{
			name: "bullets",
			text: "- one\n• two\n* three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "wrapped definition joins its row",
			text: "1) osmosis - movement of water\nacross a membrane\n2) diffusion - spreading out",
			want: []string{"osmosis - movement of water across a membrane", "diffusion - spreading out"},
		},
		{
			name: "blank line separates rows",
			text: "first row\n\nsecond row",
			want: []string{"first row", "second row"},
		},
		{
			name: "no markers falls back to one row per line",
			text: "alpha : a\nbeta : b\ngamma : c",
			want: []string{"alpha : a", "beta : b", "gamma : c"},
		},
		{
			name: "single line stays one row",
			text: "just one row",
			want: []string{"just one row"},
		},
		{
			name: "trailing whitespace and CR are stripped",
			text: "1) alpha  \r\n2) beta\t\r",
			want: []string{"alpha", "beta"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRows(tt.text))
		})
	}
}

// --- SplitTermDef ---

func TestSplitTermDef(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		wantTerm string
		wantDef  string
	}{
		{
			name:     "dictionary pattern",
			row:      "run (v.) to move quickly",
			wantTerm: "run",
			wantDef:  "to move quickly",
		},
		{
			name:     "tab beats everything after the dictionary pattern",
			row:      "cell\tbasic unit of life: the smallest one",
			wantTerm: "cell",
			wantDef:  "basic unit of life: the smallest one",
		},
		{
			name:     "colon",
			row:      "photosynthesis: making food from light",
			wantTerm: "photosynthesis",
			wantDef:  "making food from light",
		},
		{
			name:     "colon inside parentheses is skipped",
			row:      "enzyme (see: catalyst) speeds up reactions",
			wantTerm: "enzyme",
			wantDef:  "speeds up reactions",
		},
		{
			name:     "colon outside parens wins over a later dash",
			row:      "ratio: a - b",
			wantTerm: "ratio",
			wantDef:  "a - b",
		},
		{
			name:     "spaced em dash",
			row:      "cell — basic unit of life",
			wantTerm: "cell",
			wantDef:  "basic unit of life",
		},
		{
			name:     "spaced en dash",
			row:      "tissue – group of cells",
			wantTerm: "tissue",
			wantDef:  "group of cells",
		},
		{
			name:     "spaced hyphen",
			row:      "organ - group of tissues",
			wantTerm: "organ",
			wantDef:  "group of tissues",
		},
		{
			name:     "hyphenated term survives",
			row:      "self-esteem - confidence in oneself",
			wantTerm: "self-esteem",
			wantDef:  "confidence in oneself",
		},
		{
			name:     "whitespace fallback takes the first token",
			row:      "mitosis cell division into two identical cells",
			wantTerm: "mitosis",
			wantDef:  "cell division into two identical cells",
		},
		{
			name:     "single token becomes a front-only card",
			row:      "chlorophyll",
			wantTerm: "chlorophyll",
			wantDef:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, def := SplitTermDef(tt.row)
			assert.Equal(t, tt.wantTerm, term)
			assert.Equal(t, tt.wantDef, def)
		})
	}
}

func TestColonOutsideParens(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"a: b", 1},
		{"(a: b) c", -1},
		{"(a: b): c", 6},
		{"no colon here", -1},
		{"unbalanced ) then : fine", 18},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, colonOutsideParens(tt.s), "input %q", tt.s)
	}
}

// --- Text ---

func TestText(t *testing.T) {
	text := "1) term — definition\n2) another term: definition line\nwraps ok\n• third term - definition"
	got := Text(text)

	assert.Equal(t, []types.Card{
		{Front: "term", Back: "definition"},
		{Front: "another term", Back: "definition line wraps ok"},
		{Front: "third term", Back: "definition"},
	}, got)
}

func TestTextNormalizesPunctuation(t *testing.T) {
	// Curly apostrophe and minus sign come from word processors and OCR.
	got := Text("l’eau − water")
	assert.Equal(t, []types.Card{{Front: "l'eau", Back: "water"}}, got)
}

func TestTextSilentFallback(t *testing.T) {
	// A line with no delimiter still becomes a card; nothing is dropped.
	got := Text("chlorophyll\nphotosynthesis: making food")
	assert.Equal(t, []types.Card{
		{Front: "chlorophyll", Back: ""},
		{Front: "photosynthesis", Back: "making food"},
	}, got)
}

func TestTextEmptyInput(t *testing.T) {
	assert.Empty(t, Text(""))
	assert.Empty(t, Text("   \n\n  "))
}
