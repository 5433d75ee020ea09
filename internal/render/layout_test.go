// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/flashdeck/pkg/types"
)

const eps = 1e-9

func TestSheetSlots(t *testing.T) {
	slots := SheetSlots(Letter)
	require.Len(t, slots, CardsPerPage)

	// All slots share the same dimensions and stay inside the margins.
	for i, s := range slots {
		assert.InDelta(t, slots[0].W, s.W, eps, "slot %d width", i)
		assert.InDelta(t, slots[0].H, s.H, eps, "slot %d height", i)
		assert.GreaterOrEqual(t, s.X, marginX-eps)
		assert.GreaterOrEqual(t, s.Y, marginY-eps)
		assert.LessOrEqual(t, s.X+s.W, Letter.Width-marginX+eps)
		assert.LessOrEqual(t, s.Y+s.H, Letter.Height-marginY+eps)
	}

	// Reading order: left column before right, rows top to bottom.
	assert.Less(t, slots[0].X, slots[1].X)
	assert.InDelta(t, slots[0].Y, slots[1].Y, eps)
	assert.Less(t, slots[1].Y, slots[2].Y)

	// Column pairs are separated by exactly one gutter.
	assert.InDelta(t, gutter, slots[1].X-(slots[0].X+slots[0].W), eps)
	// Row pairs likewise.
	assert.InDelta(t, gutter, slots[2].Y-(slots[0].Y+slots[0].H), eps)
}

func TestBackSlotsLongEdgeMirrorsColumns(t *testing.T) {
	front := SheetSlots(Letter)
	back, rotated := BackSlots(Letter, types.DuplexLongEdge, 0, 0)
	require.False(t, rotated)

	for i := range front {
		// Mirrored slot occupies the reflected horizontal span.
		wantX := Letter.Width - front[i].X - front[i].W
		assert.InDelta(t, wantX, back[i].X, eps, "slot %d", i)
		assert.InDelta(t, front[i].Y, back[i].Y, eps, "slot %d", i)
	}

	// In a two-column grid, mirroring swaps the columns.
	assert.InDelta(t, front[1].X, back[0].X, eps)
	assert.InDelta(t, front[0].X, back[1].X, eps)
}

func TestBackSlotsNoMirrorMatchesFront(t *testing.T) {
	front := SheetSlots(Letter)
	back, rotated := BackSlots(Letter, types.DuplexLongEdgeNoMirror, 0, 0)
	require.False(t, rotated)
	assert.Equal(t, front, back)
}

func TestBackSlotsShortEdgeRotates(t *testing.T) {
	front := SheetSlots(Letter)
	back, rotated := BackSlots(Letter, types.DuplexShortEdge, 0, 0)
	assert.True(t, rotated)
	// Rotation happens at draw time; slots are untouched.
	assert.Equal(t, front, back)
}

func TestBackSlotsOffsets(t *testing.T) {
	front := SheetSlots(Letter)
	back, _ := BackSlots(Letter, types.DuplexLongEdgeNoMirror, 2.5, -1.0)

	for i := range front {
		assert.InDelta(t, front[i].X+2.5*mm, back[i].X, eps)
		// Positive Y offset moves content toward the top edge.
		assert.InDelta(t, front[i].Y+1.0*mm, back[i].Y, eps)
	}
}

func TestMMConversion(t *testing.T) {
	// 25.4 mm is an inch is 72 pt.
	assert.True(t, math.Abs(25.4*mm-72.0) < eps)
}
