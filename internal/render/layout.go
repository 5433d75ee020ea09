// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays flash cards out eight to a US Letter page and writes
// the duplex-ready PDF. Pages alternate: a front sheet for each batch of
// eight cards, then the matching back sheet positioned so the two register
// when printed double-sided.
package render

import (
	"github.com/pdiddy/flashdeck/pkg/types"
)

// PaperSize describes a page in PostScript points (1" = 72 pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// Letter is US Letter portrait, 8.5" x 11".
var Letter = PaperSize{Name: "Letter", Width: 612, Height: 792}

// mm converts millimetres to points.
const mm = 72.0 / 25.4

// Grid constants for the 8-up layout: 2 columns x 4 rows.
const (
	CardsPerPage = 8
	gridCols     = 2
	gridRows     = 4

	gutter  = 12 * mm
	marginX = 15 * mm
	marginY = 18 * mm
)

// Slot is one card cell. X and Y locate the top-left corner with the PDF
// origin at the top-left of the page.
type Slot struct {
	X, Y, W, H float64
}

// SheetSlots returns the eight card slots in reading order (row-major,
// left to right).
func SheetSlots(p PaperSize) []Slot {
	w := (p.Width - 2*marginX - gutter) / gridCols
	h := (p.Height - 2*marginY - gutter*(gridRows-1)) / gridRows

	slots := make([]Slot, 0, CardsPerPage)
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			slots = append(slots, Slot{
				X: marginX + float64(c)*(w+gutter),
				Y: marginY + float64(r)*(h+gutter),
				W: w,
				H: h,
			})
		}
	}
	return slots
}

// BackSlots returns the slots for a back sheet under the given duplex mode
// plus whether the whole sheet must be drawn inside a 180-degree rotation.
//
// Long-edge flips reverse the page left to right, so backs mirror columns.
// Short-edge flips turn the page upside down, handled by rotating the
// drawing rather than the slots. The no-mirror variant exists for printers
// that compensate on their own. Offsets (mm) shift back content for
// registration drift; positive Y moves content toward the top edge, as a
// user nudging a misaligned print expects.
func BackSlots(p PaperSize, mode types.DuplexMode, offsetXmm, offsetYmm float64) (slots []Slot, rotated bool) {
	front := SheetSlots(p)
	slots = make([]Slot, len(front))

	for i, s := range front {
		b := s
		if mode == types.DuplexLongEdge {
			b.X = p.Width - s.X - s.W
		}
		b.X += offsetXmm * mm
		b.Y -= offsetYmm * mm
		slots[i] = b
	}
	return slots, mode == types.DuplexShortEdge
}
