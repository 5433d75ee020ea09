// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/flashdeck/pkg/types"
)

// Typography constants, in points and characters.
const (
	frontFontSize      = 14
	frontFontSizeSmall = 12
	backFontSize       = 11
	footerFontSize     = 9

	frontMaxChars = 80 // front text is truncated, not wrapped
	wrapWidth     = 70 // greedy wrap threshold for back text
	maxBackLines  = 12
	backLineStep  = 12 // baseline-to-baseline distance, pt

	textInset   = 10 * mm // left inset of card text
	frontTextY  = 12 * mm // front baseline below the card top
	backTextY   = 18 * mm // first back baseline below the card top
	footerInset = 6 * mm  // footer distance from card corner
)

// DefaultFooterTemplate is used when the footer is enabled with no
// template.
const DefaultFooterTemplate = "{subject} • {lesson}"

// BuildPDF renders the deck as an 8-up duplex PDF and writes it to w.
// Cards with an empty front are not rendered but keep their grid slot so
// fronts and backs stay aligned row for row.
func BuildPDF(deck types.Deck, cfg types.RenderConfig, w io.Writer) error {
	if deck.PrintableCount() == 0 {
		return fmt.Errorf("deck %q has no printable cards: every front is empty", deck.Name)
	}

	duplex := cfg.Duplex
	if duplex == "" {
		duplex = types.DuplexLongEdgeNoMirror
	}
	switch duplex {
	case types.DuplexLongEdge, types.DuplexLongEdgeNoMirror, types.DuplexShortEdge:
	default:
		return fmt.Errorf("unknown duplex mode %q", duplex)
	}

	ft := footer{
		enabled:  cfg.Footer.Enabled,
		template: cfg.Footer.Template,
		subject:  deck.Subject,
		lesson:   deck.Lesson,
	}
	if ft.enabled && ft.template == "" {
		ft.template = DefaultFooterTemplate
	}

	pdf := fpdf.New("P", "pt", Letter.Name, "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	front := SheetSlots(Letter)
	back, rotated := BackSlots(Letter, duplex, cfg.OffsetXmm, cfg.OffsetYmm)

	page := 1
	for start := 0; start < len(deck.Cards); start += CardsPerPage {
		end := start + CardsPerPage
		if end > len(deck.Cards) {
			end = len(deck.Cards)
		}
		batch := deck.Cards[start:end]

		pdf.AddPage()
		for j, c := range batch {
			if !c.Printable() {
				continue
			}
			drawFront(pdf, tr, front[j], c.Front, ft.render(start+j+1, page), cfg.SmallFront)
		}

		pdf.AddPage()
		if rotated {
			pdf.TransformBegin()
			pdf.TransformRotate(180, Letter.Width/2, Letter.Height/2)
		}
		if cfg.CornerMarker {
			pdf.Rect(marginX/2, marginY/2, 4, 4, "F")
		}
		for j, c := range batch {
			if !c.Printable() {
				continue
			}
			drawBack(pdf, tr, back[j], c.Back, ft.render(start+j+1, page))
		}
		if rotated {
			pdf.TransformEnd()
		}
		page++
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// cutBorder draws the dashed cut rectangle around a slot.
func cutBorder(pdf *fpdf.Fpdf, s Slot) {
	pdf.SetDashPattern([]float64{4, 4}, 0)
	pdf.Rect(s.X, s.Y, s.W, s.H, "D")
	pdf.SetDashPattern([]float64{}, 0)
}

func drawFront(pdf *fpdf.Fpdf, tr func(string) string, s Slot, text, footerText string, small bool) {
	cutBorder(pdf, s)

	size := float64(frontFontSize)
	if small {
		size = frontFontSizeSmall
	}
	pdf.SetFont("Helvetica", "B", size)
	pdf.Text(s.X+textInset, s.Y+frontTextY, tr(truncate(text, frontMaxChars)))

	drawFooter(pdf, tr, s, footerText)
}

func drawBack(pdf *fpdf.Fpdf, tr func(string) string, s Slot, text, footerText string) {
	cutBorder(pdf, s)

	pdf.SetFont("Helvetica", "", backFontSize)
	y := s.Y + backTextY
	for _, ln := range wrapText(text, wrapWidth, maxBackLines) {
		pdf.Text(s.X+textInset, y, tr(ln))
		y += backLineStep
	}

	drawFooter(pdf, tr, s, footerText)
}

func drawFooter(pdf *fpdf.Fpdf, tr func(string) string, s Slot, text string) {
	if text == "" {
		return
	}
	pdf.SetFont("Helvetica", "", footerFontSize)
	t := tr(text)
	x := s.X + s.W - footerInset - pdf.GetStringWidth(t)
	pdf.Text(x, s.Y+s.H-footerInset, t)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// wrapText greedily wraps words at width runes per line, keeping at most
// maxLines lines. Overlong single words get a line of their own.
func wrapText(s string, width, maxLines int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		test := word
		if cur != "" {
			test = cur + " " + word
		}
		if len([]rune(test)) > width && cur != "" {
			lines = append(lines, cur)
			cur = word
		} else {
			cur = test
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
