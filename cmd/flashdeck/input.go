// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/flashdeck/internal/deck"
	"github.com/pdiddy/flashdeck/internal/parse"
	"github.com/pdiddy/flashdeck/pkg/types"
)

// addInputFlags registers the flags shared by every command that ingests
// card input.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "auto", "input format: auto, text, csv, xlsx, or tsv")
	cmd.Flags().String("front-col", "", "front column: header name or 1-based number (CSV/XLSX)")
	cmd.Flags().String("back-col", "", "back column: header name or 1-based number (CSV/XLSX)")
	cmd.Flags().Bool("no-header", false, "treat the first table row as data (CSV/XLSX)")
	cmd.Flags().String("sheet", "", "worksheet name (XLSX; default: first sheet)")
}

// addDeckFlags registers the deck metadata flags.
func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "deck name (default: derived from the input filename)")
	cmd.Flags().String("subject", "", "subject for the card footer")
	cmd.Flags().String("lesson", "", "lesson or unit for the card footer")
}

// readInput returns the raw input bytes and a display name for the source.
// A path of "-" or "" reads stdin.
func readInput(path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return data, filepath.Base(path), nil
}

// detectFormat resolves the "auto" input format from the file extension.
// Extensionless input (stdin included) is treated as free text.
func detectFormat(format, path string) string {
	if format != "auto" && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	case ".tsv":
		return "tsv"
	default:
		return "text"
	}
}

// readCards ingests a file (or stdin) into cards plus a source label.
func readCards(cmd *cobra.Command, path string) ([]types.Card, string, error) {
	data, source, err := readInput(path)
	if err != nil {
		return nil, "", err
	}

	opt := parse.TableOptions{}
	opt.FrontColumn, _ = cmd.Flags().GetString("front-col")
	opt.BackColumn, _ = cmd.Flags().GetString("back-col")
	opt.NoHeader, _ = cmd.Flags().GetBool("no-header")
	opt.Sheet, _ = cmd.Flags().GetString("sheet")

	format, _ := cmd.Flags().GetString("format")
	switch detectFormat(format, path) {
	case "text":
		return parse.Text(string(data)), source, nil
	case "tsv":
		return parse.TSV(string(data)), source, nil
	case "csv":
		cards, err := parse.ReadCSV(bytes.NewReader(data), opt)
		return cards, source, err
	case "xlsx":
		cards, err := parse.ReadXLSX(bytes.NewReader(data), opt)
		return cards, source, err
	default:
		return nil, "", fmt.Errorf("unknown input format %q", format)
	}
}

// deckFromFlags wraps cards in a Deck using the metadata flags. The deck
// name falls back to the source filename without its extension.
func deckFromFlags(cmd *cobra.Command, cards []types.Card, source string) types.Deck {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.TrimSuffix(source, filepath.Ext(source))
	}
	subject, _ := cmd.Flags().GetString("subject")
	lesson, _ := cmd.Flags().GetString("lesson")
	return types.Deck{Name: name, Subject: subject, Lesson: lesson, Cards: cards}
}

// loadDeck loads a deck for printing. Deck YAML files come back as
// written; anything else goes through the parser with the input flags.
func loadDeck(cmd *cobra.Command, path string) (types.Deck, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := deck.ReadFile(path)
		if err != nil {
			return types.Deck{}, err
		}
		d := f.Deck
		// Metadata flags override what the file carries.
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			d.Name = v
		}
		if v, _ := cmd.Flags().GetString("subject"); v != "" {
			d.Subject = v
		}
		if v, _ := cmd.Flags().GetString("lesson"); v != "" {
			d.Lesson = v
		}
		return d, nil
	}

	cards, source, err := readCards(cmd, path)
	if err != nil {
		return types.Deck{}, err
	}
	return deckFromFlags(cmd, cards, source), nil
}
