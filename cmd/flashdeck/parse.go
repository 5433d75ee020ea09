package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/flashdeck/internal/deck"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a list into an editable deck file",
	Long: `Parse reads a list from a file or stdin and splits it into flash cards.
Free text is parsed with delimiter heuristics: "1) term — definition",
"term : definition", "term (n.) definition" and tab-separated rows all
work. CSV and XLSX tables map two columns onto fronts and backs.

The result is written as a deck YAML file; open it in any editor to fix
cards before printing with "flashdeck build".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cards, source, err := readCards(cmd, path)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("no cards found in %s", source)
	}

	d := deckFromFlags(cmd, cards, source)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = d.Name + ".yaml"
	}
	summary := deck.Summary{Source: source, Rows: len(cards), Timestamp: time.Now().UTC()}
	if err := deck.WriteFile(out, d, summary); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Parsed %d card(s) from %s into %s\n", len(cards), source, out)
	fmt.Fprintf(os.Stderr, "Review the file, then print with: flashdeck build %s\n", out)
	return nil
}

func init() {
	addInputFlags(parseCmd)
	addDeckFlags(parseCmd)
	parseCmd.Flags().String("out", "", "deck file to write (default: <name>.yaml)")
	parseCmd.Flags().Bool("json", false, "print the deck as JSON instead of writing a file")

	rootCmd.AddCommand(parseCmd)
}
