// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/flashdeck/pkg/types"
)

func sampleDeck(n int) types.Deck {
	d := types.Deck{Name: "bio", Subject: "Biology", Lesson: "Cells"}
	for i := 0; i < n; i++ {
		d.Cards = append(d.Cards, types.Card{
			Front: fmt.Sprintf("term %d", i+1),
			Back:  fmt.Sprintf("definition %d", i+1),
		})
	}
	return d
}

// pageCount reads the page tree count out of the PDF object structure.
func pageCount(t *testing.T, pdf []byte) string {
	t.Helper()
	i := bytes.Index(pdf, []byte("/Count "))
	require.GreaterOrEqual(t, i, 0, "PDF has no page tree")
	rest := pdf[i+len("/Count "):]
	j := bytes.IndexAny(rest, " \r\n/>")
	require.Greater(t, j, 0)
	return string(rest[:j])
}

func buildPDF(t *testing.T, deck types.Deck, cfg types.RenderConfig) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, BuildPDF(deck, cfg, &buf))
	return buf.Bytes()
}

func TestBuildPDFPagination(t *testing.T) {
	tests := []struct {
		cards     int
		wantPages string
	}{
		{1, "2"},   // one batch: front + back
		{8, "2"},   // exactly one full sheet
		{9, "4"},   // spills onto a second sheet pair
		{16, "4"},  //
		{17, "6"},  //
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d cards", tt.cards), func(t *testing.T) {
			out := buildPDF(t, sampleDeck(tt.cards), types.RenderConfig{})
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output is not a PDF")
			assert.Equal(t, tt.wantPages, pageCount(t, out))
		})
	}
}

func TestBuildPDFAllDuplexModes(t *testing.T) {
	for _, mode := range []types.DuplexMode{
		types.DuplexLongEdge,
		types.DuplexLongEdgeNoMirror,
		types.DuplexShortEdge,
	} {
		t.Run(string(mode), func(t *testing.T) {
			out := buildPDF(t, sampleDeck(10), types.RenderConfig{
				Duplex:    mode,
				OffsetXmm: 0.5,
				OffsetYmm: -0.25,
			})
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

func TestBuildPDFUnknownDuplexMode(t *testing.T) {
	var buf bytes.Buffer
	err := BuildPDF(sampleDeck(1), types.RenderConfig{Duplex: "diagonal"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown duplex mode")
}

func TestBuildPDFEmptyDeck(t *testing.T) {
	var buf bytes.Buffer
	err := BuildPDF(types.Deck{Name: "empty"}, types.RenderConfig{}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no printable cards")

	// All-blank fronts count as empty too.
	deck := types.Deck{Name: "blanks", Cards: []types.Card{{Front: "  "}, {Front: ""}}}
	err = BuildPDF(deck, types.RenderConfig{}, &buf)
	require.Error(t, err)
}

func TestBuildPDFSkipsBlankFrontsButKeepsSlots(t *testing.T) {
	deck := sampleDeck(3)
	deck.Cards[1].Front = "" // middle card drops out, slots 1 and 3 stay put

	out := buildPDF(t, deck, types.RenderConfig{})
	assert.Equal(t, "2", pageCount(t, out))
}

func TestBuildPDFWithFooterAndMarker(t *testing.T) {
	out := buildPDF(t, sampleDeck(4), types.RenderConfig{
		Footer:       types.FooterConfig{Enabled: true, Template: "{subject} • {lesson} • {index}"},
		CornerMarker: true,
		SmallFront:   true,
	})
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 80))
	long := strings.Repeat("x", 100)
	assert.Equal(t, 80, len([]rune(truncate(long, 80))))
	// Rune-safe: multibyte input must not be cut mid-rune.
	assert.Equal(t, "ééé", truncate("ééééé", 3))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"short line stays whole", "a small definition", []string{"a small definition"}},
		{
			"wraps at width",
			strings.TrimSpace(strings.Repeat("word ", 30)),
			nil, // checked structurally below
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, wrapWidth, maxBackLines)
			if tt.want != nil || tt.in == "" {
				assert.Equal(t, tt.want, got)
				return
			}
			for _, ln := range got {
				assert.LessOrEqual(t, len([]rune(ln)), wrapWidth)
			}
			assert.Equal(t, tt.in, strings.Join(got, " "), "wrapping must not lose words")
		})
	}

	t.Run("caps at max lines", func(t *testing.T) {
		long := strings.TrimSpace(strings.Repeat("lengthy-word ", 200))
		got := wrapText(long, wrapWidth, maxBackLines)
		assert.Len(t, got, maxBackLines)
	})

	t.Run("overlong word gets its own line", func(t *testing.T) {
		got := wrapText("tiny "+strings.Repeat("y", 90), wrapWidth, maxBackLines)
		assert.Equal(t, []string{"tiny", strings.Repeat("y", 90)}, got)
	})
}
