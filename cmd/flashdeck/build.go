package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/flashdeck/internal/render"
	"github.com/pdiddy/flashdeck/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build <deck.yaml|file>",
	Short: "Render a deck as a duplex-ready flash card PDF",
	Long: `Build renders cards eight to a US Letter page: a front sheet, then the
matching back sheet, for each batch of eight. The duplex mode controls how
backs register against fronts when the stack is printed double-sided:

  long-edge            backs mirror grid columns (most duplex printers)
  long-edge-no-mirror  backs keep front positions
  short-edge           back sheets are rotated 180 degrees

Input is a deck YAML file from "flashdeck parse", or any file parse
accepts (text, CSV, XLSX, TSV) for a one-shot print.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	d, err := loadDeck(cmd, args[0])
	if err != nil {
		return err
	}

	duplex, _ := cmd.Flags().GetString("duplex")
	offX, _ := cmd.Flags().GetFloat64("offset-x")
	offY, _ := cmd.Flags().GetFloat64("offset-y")
	footerOn, _ := cmd.Flags().GetBool("footer")
	footerTpl, _ := cmd.Flags().GetString("footer-template")
	marker, _ := cmd.Flags().GetBool("corner-marker")
	small, _ := cmd.Flags().GetBool("small")

	cfg := types.RenderConfig{
		Duplex:       types.DuplexMode(duplex),
		OffsetXmm:    offX,
		OffsetYmm:    offY,
		Footer:       types.FooterConfig{Enabled: footerOn, Template: footerTpl},
		CornerMarker: marker,
		SmallFront:   small,
	}

	out, _ := cmd.Flags().GetString("output")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := render.BuildPDF(d, cfg, f); err != nil {
		os.Remove(out)
		return err
	}

	sheets := (len(d.Cards) + render.CardsPerPage - 1) / render.CardsPerPage
	fmt.Fprintf(os.Stderr, "Wrote %d card(s) on %d sheet(s) to %s\n", d.PrintableCount(), sheets, out)
	return nil
}

func init() {
	addInputFlags(buildCmd)
	addDeckFlags(buildCmd)
	buildCmd.Flags().StringP("output", "o", "flashcards.pdf", "output PDF path")
	buildCmd.Flags().String("duplex", string(types.DuplexLongEdgeNoMirror), "duplex mode: long-edge, long-edge-no-mirror, or short-edge")
	buildCmd.Flags().Float64("offset-x", 0, "back page offset X in mm")
	buildCmd.Flags().Float64("offset-y", 0, "back page offset Y in mm")
	buildCmd.Flags().Bool("footer", false, "draw the footer line on every card")
	buildCmd.Flags().String("footer-template", render.DefaultFooterTemplate, "footer template; placeholders: {subject} {lesson} {unit} {index} {page}")
	buildCmd.Flags().Bool("corner-marker", false, "draw a registration marker on back sheets")
	buildCmd.Flags().Bool("small", false, "use the smaller front typeface")

	rootCmd.AddCommand(buildCmd)
}
