// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns user-supplied lists into flash cards. Free text is
// split into logical rows by list markers, then each row is split into a
// term and a definition by trying delimiters in priority order. Structured
// inputs (CSV, XLSX, pasted tab-separated tables) are handled in table.go.
package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/flashdeck/pkg/types"
)

// normalizer maps smart punctuation onto the forms the delimiters expect:
// curly quotes become ASCII, minus and figure dash become the en dash the
// spaced-dash delimiter recognizes.
var normalizer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"‒", "–",
	"−", "–",
)

// rowMarker matches the start-of-row markers: "1." / "1)" numbering and
// the bullets "-", "•", "*".
var rowMarker = regexp.MustCompile(`^\s*(?:\d+[.)]\s+|[•\-*]\s+)`)

// dictPattern matches dictionary-style rows: "term (pos) definition".
var dictPattern = regexp.MustCompile(`^\s*([^()]+?)\s*\([^)]*\)\s+(.+)$`)

// spacedDash matches a dash delimiter only when surrounded by spaces, so
// hyphenated terms survive intact.
var spacedDash = regexp.MustCompile(`\s—\s|\s–\s|\s-\s`)

// SplitRows splits text into logical rows. Marker lines start a new row
// (with the marker stripped), blank lines flush the current row, and
// unmarked lines continue the row above so wrapped definitions stay
// together. When no markers appear at all, each non-empty line is its own
// row.
func SplitRows(text string) []string {
	var rows []string
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			rows = append(rows, strings.TrimSpace(strings.Join(buf, " ")))
			buf = nil
		}
	}

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, " \t\r")
		if strings.TrimSpace(ln) == "" {
			flush()
			continue
		}
		if loc := rowMarker.FindStringIndex(ln); loc != nil {
			flush()
			buf = append(buf, ln[loc[1]:])
			continue
		}
		buf = append(buf, ln)
	}
	flush()

	// No markers collapsed everything into one row: fall back to one row
	// per non-empty line.
	if len(rows) == 1 && strings.Contains(text, "\n") {
		var lines []string
		for _, ln := range strings.Split(text, "\n") {
			if t := strings.TrimSpace(ln); t != "" {
				lines = append(lines, t)
			}
		}
		if len(lines) > 1 {
			rows = lines
		}
	}
	return rows
}

// SplitTermDef splits one row into term and definition. Delimiters are
// tried in priority order: the dictionary pattern "term (pos) definition",
// a tab, the first colon outside parentheses, a spaced dash, and finally
// the first whitespace. A row that matches nothing becomes a term with an
// empty definition.
func SplitTermDef(row string) (term, def string) {
	if m := dictPattern.FindStringSubmatch(row); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	if i := strings.Index(row, "\t"); i >= 0 {
		return strings.TrimSpace(row[:i]), strings.TrimSpace(row[i+1:])
	}

	if i := colonOutsideParens(row); i >= 0 {
		return strings.TrimSpace(row[:i]), strings.TrimSpace(row[i+1:])
	}

	if loc := spacedDash.FindStringIndex(row); loc != nil {
		return strings.TrimSpace(row[:loc[0]]), strings.TrimSpace(row[loc[1]:])
	}

	fields := strings.Fields(row)
	if len(fields) >= 2 {
		first := fields[0]
		i := strings.Index(row, first)
		return first, strings.TrimSpace(row[i+len(first):])
	}
	return strings.TrimSpace(row), ""
}

// colonOutsideParens returns the byte index of the first colon that is not
// inside parentheses, or -1. Colons inside "(see: x)" annotations must not
// split the row.
func colonOutsideParens(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Text parses free text into cards: normalize punctuation, split into
// rows, split each row into term and definition. Rows that match no
// delimiter still become cards, so nothing the user typed is dropped.
func Text(text string) []types.Card {
	text = normalizer.Replace(text)

	var cards []types.Card
	for _, row := range SplitRows(text) {
		if strings.TrimSpace(row) == "" {
			continue
		}
		front, back := SplitTermDef(row)
		cards = append(cards, types.Card{Front: front, Back: back})
	}
	return cards
}
