// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match tags publication rows with a roster-involvement status.
//
// Matching is a substring heuristic over free-text name+affiliation fields:
// a field matches when any roster name occurs verbatim inside its trimmed
// text. Short or common names can false-positive, and Western-order or
// re-punctuated names will not match. That is the documented behavior of
// the workbooks this tool audits, not an oversight to fix here.
package match

import (
	"strings"

	"github.com/pdiddy/pubaudit/internal/workbook"
	"github.com/pdiddy/pubaudit/pkg/types"
)

// DefaultStatusColumn is the header used for the added status column when
// the configuration leaves it empty.
const DefaultStatusColumn = "status"

// Columns names the designated author fields in the publications sheet.
type Columns struct {
	FirstAuthor string
	CorrAuthor  string
	AllAuthors  string

	// Status is the header for the added column; empty means DefaultStatusColumn.
	Status string
}

func (c Columns) statusName() string {
	if c.Status == "" {
		return DefaultStatusColumn
	}
	return c.Status
}

// ColumnsFromConfig maps the configured column headers onto Columns.
func ColumnsFromConfig(cfg types.MatchConfig) Columns {
	return Columns{
		FirstAuthor: cfg.FirstAuthorColumn,
		CorrAuthor:  cfg.CorrAuthorColumn,
		AllAuthors:  cfg.AllAuthorsColumn,
		Status:      cfg.StatusColumn,
	}
}

// Summary counts data rows per assigned status.
type Summary struct {
	Rows      int `json:"rows" yaml:"rows"`
	Lead      int `json:"lead" yaml:"lead"`
	Coauthor  int `json:"coauthor" yaml:"coauthor"`
	Unmatched int `json:"unmatched" yaml:"unmatched"`
}

// Result holds the tagged table and the per-row statuses in sheet order.
type Result struct {
	// Table is the input table with the status column in second position
	// and all other columns in their original relative order.
	Table *workbook.Table

	// Statuses has one entry per data row.
	Statuses []types.Status

	Summary Summary
}

// Tag assigns a status to every data row of the publications table.
//
// Per row: the three designated fields are trimmed (missing cells count as
// empty), then status starts null, becomes StatusCoauthor when the
// all-authors field contains any roster name, and is overwritten with
// StatusLead when the first-author or corresponding-author field does. Lead
// therefore wins when both conditions hold. An empty roster tags every row
// null.
//
// All three designated columns must be present; a *workbook.ColumnError
// names the missing ones. A pre-existing status column is replaced.
func Tag(t *workbook.Table, cols Columns, names []string) (*Result, error) {
	firstIdx := t.ColumnIndex(cols.FirstAuthor)
	corrIdx := t.ColumnIndex(cols.CorrAuthor)
	allIdx := t.ColumnIndex(cols.AllAuthors)

	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{
		{cols.FirstAuthor, firstIdx},
		{cols.CorrAuthor, corrIdx},
		{cols.AllAuthors, allIdx},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return nil, &workbook.ColumnError{
			Missing:   missing,
			Available: t.Columns,
		}
	}

	statuses := make([]types.Status, len(t.Rows))
	summary := Summary{Rows: len(t.Rows)}

	for i, row := range t.Rows {
		s := rowStatus(t.Cell(row, firstIdx), t.Cell(row, corrIdx), t.Cell(row, allIdx), names)
		statuses[i] = s
		switch s {
		case types.StatusLead:
			summary.Lead++
		case types.StatusCoauthor:
			summary.Coauthor++
		default:
			summary.Unmatched++
		}
	}

	return &Result{
		Table:    withStatusColumn(t, cols.statusName(), statuses),
		Statuses: statuses,
		Summary:  summary,
	}, nil
}

// rowStatus implements the assignment-order precedence: coauthor is set
// first, then lead overwrites it when either lead field matches.
func rowStatus(first, corr, all string, names []string) types.Status {
	status := types.StatusNone
	if containsAny(all, names) {
		status = types.StatusCoauthor
	}
	if containsAny(first, names) || containsAny(corr, names) {
		status = types.StatusLead
	}
	return status
}

// containsAny reports whether any non-empty roster name is a substring of
// the field. An empty field never matches.
func containsAny(field string, names []string) bool {
	if field == "" {
		return false
	}
	for _, n := range names {
		if n != "" && strings.Contains(field, n) {
			return true
		}
	}
	return false
}

// withStatusColumn returns a copy of t with the status column inserted at
// index 1. Any existing column with the same header is dropped first so a
// re-run of the tagger overwrites its own output.
func withStatusColumn(t *workbook.Table, name string, statuses []types.Status) *workbook.Table {
	base := t
	if t.ColumnIndex(name) >= 0 {
		base = dropColumn(t, t.ColumnIndex(name))
	}

	columns := make([]string, 0, len(base.Columns)+1)
	if len(base.Columns) > 0 {
		columns = append(columns, base.Columns[0])
	}
	columns = append(columns, name)
	if len(base.Columns) > 1 {
		columns = append(columns, base.Columns[1:]...)
	}

	rows := make([][]string, len(base.Rows))
	for i, row := range base.Rows {
		out := make([]string, 0, len(row)+1)
		if len(row) > 0 {
			out = append(out, row[0])
		} else {
			out = append(out, "")
		}
		out = append(out, statuses[i].Cell())
		if len(row) > 1 {
			out = append(out, row[1:]...)
		}
		rows[i] = out
	}

	return &workbook.Table{Columns: columns, Rows: rows}
}

// dropColumn returns a copy of t without column idx.
func dropColumn(t *workbook.Table, idx int) *workbook.Table {
	columns := make([]string, 0, len(t.Columns)-1)
	columns = append(columns, t.Columns[:idx]...)
	columns = append(columns, t.Columns[idx+1:]...)

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx >= len(row) {
			rows[i] = append([]string(nil), row...)
			continue
		}
		out := make([]string, 0, len(row)-1)
		out = append(out, row[:idx]...)
		out = append(out, row[idx+1:]...)
		rows[i] = out
	}

	return &workbook.Table{Columns: columns, Rows: rows}
}
