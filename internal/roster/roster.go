// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster extracts personnel names from a roster workbook.
package roster

import (
	"fmt"
	"io"

	"github.com/pdiddy/pubaudit/internal/workbook"
)

// Load reads the named column of the roster sheet and returns its non-empty
// values in sheet order, byte-for-byte as the cells hold them. Duplicates
// are retained; callers that want a unique roster apply Dedupe. The roster
// sheet uses its first row as the header (no title row to skip).
//
// A missing column yields a *workbook.ColumnError listing the columns the
// sheet actually has.
func Load(path, sheet, column string) ([]string, error) {
	t, err := workbook.ReadSheet(path, sheet, 0)
	if err != nil {
		return nil, err
	}

	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, &workbook.ColumnError{
			Sheet:     sheet,
			Missing:   []string{column},
			Available: t.Columns,
		}
	}

	var names []string
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		// Names are matched verbatim downstream, so cells keep their
		// whitespace; only truly empty cells are dropped.
		if v := row[idx]; v != "" {
			names = append(names, v)
		}
	}
	return names, nil
}

// LoadLenient is Load with soft failure: any load error is reported to w
// and an empty roster is returned, so the pipeline still runs and tags
// every row unmatched.
func LoadLenient(path, sheet, column string, w io.Writer) []string {
	names, err := Load(path, sheet, column)
	if err != nil {
		fmt.Fprintf(w, "warning: roster load failed, proceeding with an empty roster: %v\n", err)
		return nil
	}
	return names
}

// Dedupe removes duplicate names, keeping the first occurrence of each and
// preserving sheet order.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
