// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/flashdeck/pkg/types"
)

// TableOptions selects which columns feed the card fronts and backs.
type TableOptions struct {
	// FrontColumn and BackColumn are header names, or 1-based column
	// numbers when numeric. Empty selects the first and second columns.
	FrontColumn string
	BackColumn  string

	// NoHeader treats the first row as data.
	NoHeader bool

	// Sheet names the XLSX worksheet to read. Empty selects the first
	// sheet.
	Sheet string
}

// ReadCSV reads a two-or-more column CSV into cards.
func ReadCSV(r io.Reader, opt TableOptions) ([]types.Card, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return cardsFromRows(rows, opt)
}

// ReadXLSX reads an Excel workbook into cards using excelize.
func ReadXLSX(r io.Reader, opt TableOptions) ([]types.Card, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return cardsFromRows(rows, opt)
}

// TSV parses a pasted tab-separated table (the shape spreadsheets put on
// the clipboard). Rows without a tab become front-only cards.
func TSV(text string) []types.Card {
	var cards []types.Card
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		front, back := ln, ""
		if i := strings.Index(ln, "\t"); i >= 0 {
			front, back = ln[:i], ln[i+1:]
		}
		cards = append(cards, types.Card{
			Front: strings.TrimSpace(front),
			Back:  strings.TrimSpace(back),
		})
	}
	return cards
}

// cardsFromRows maps tabular rows onto cards. With a header row present,
// columns can be selected by name; numeric selectors are 1-based positions
// and work with or without a header.
func cardsFromRows(rows [][]string, opt TableOptions) ([]types.Card, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}

	var header []string
	data := rows
	if !opt.NoHeader {
		header = rows[0]
		data = rows[1:]
	}

	frontIdx, err := resolveColumn(opt.FrontColumn, header, 0)
	if err != nil {
		return nil, fmt.Errorf("front column: %w", err)
	}
	backIdx, err := resolveColumn(opt.BackColumn, header, 1)
	if err != nil {
		return nil, fmt.Errorf("back column: %w", err)
	}

	cell := func(row []string, idx int) string {
		if idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var cards []types.Card
	for _, row := range data {
		front := cell(row, frontIdx)
		back := cell(row, backIdx)
		if front == "" && back == "" {
			continue
		}
		cards = append(cards, types.Card{Front: front, Back: back})
	}
	return cards, nil
}

// resolveColumn turns a selector into a zero-based column index.
func resolveColumn(sel string, header []string, fallback int) (int, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return fallback, nil
	}
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("column number %d out of range", n)
		}
		return n - 1, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), sel) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no column named %q", sel)
}
