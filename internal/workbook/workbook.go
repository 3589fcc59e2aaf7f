// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook reads and writes xlsx worksheets as in-memory tables.
// Sheets are small enough (roster lists, annual publication reports) that
// whole-sheet loads are fine; nothing here streams.
package workbook

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a worksheet held in memory: a header row plus data rows. Rows are
// ragged exactly as the sheet stores them; Cell pads short rows with "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value of the given row at column idx. Rows shorter
// than the header and negative indexes yield "".
func (t *Table) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ColumnError reports one or more expected columns missing from a sheet,
// together with the columns the sheet actually has so the operator can
// correct the header names.
type ColumnError struct {
	Sheet     string
	Missing   []string
	Available []string
}

func (e *ColumnError) Error() string {
	where := "sheet"
	if e.Sheet != "" {
		where = fmt.Sprintf("sheet %q", e.Sheet)
	}
	return fmt.Sprintf("%s is missing column(s) %s (available: %s)",
		where, strings.Join(quoteAll(e.Missing), ", "), strings.Join(quoteAll(e.Available), ", "))
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// ReadSheet opens the workbook at path and loads the named sheet. skipRows
// leading rows are discarded, the next row supplies the column names, and
// the remaining rows become data. Header cells are trimmed; data cells are
// kept verbatim.
func ReadSheet(path, sheet string, skipRows int) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q from %s: %w", sheet, path, err)
	}

	if len(rows) <= skipRows {
		return nil, fmt.Errorf("sheet %q in %s has no header row (only %d row(s), %d skipped)",
			sheet, path, len(rows), skipRows)
	}

	header := rows[skipRows]
	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	return &Table{
		Columns: columns,
		Rows:    rows[skipRows+1:],
	}, nil
}

// SheetNames lists the worksheets of the workbook at path in file order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// Write saves the table as a new single-sheet workbook at path. Every cell
// is written as a string so numeric-looking text and multi-byte names
// survive the round trip, and no row-index column is added.
func Write(path, sheet string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("naming sheet %q: %w", sheet, err)
		}
	}

	if err := writeRow(f, sheet, 1, t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("addressing cell (%d,%d): %w", col+1, rowNum, err)
		}
		if err := f.SetCellStr(sheet, name, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", name, err)
		}
	}
	return nil
}
