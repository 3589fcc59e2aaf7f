// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RosterConfig holds settings for loading the personnel roster.
type RosterConfig struct {
	// Path is the roster workbook (.xlsx) path.
	Path string `json:"path" yaml:"path"`

	// Sheet is the worksheet holding the personnel list.
	Sheet string `json:"sheet" yaml:"sheet"`

	// NameColumn is the header of the column holding personnel names.
	NameColumn string `json:"name_column" yaml:"name_column"`

	// Dedupe removes duplicate names while preserving first-occurrence order.
	// Off by default: the roster is used as-is, duplicates included.
	Dedupe bool `json:"dedupe" yaml:"dedupe"`
}

// PublicationsConfig holds settings for reading the publications sheet.
type PublicationsConfig struct {
	// Path is the publications workbook (.xlsx) path.
	Path string `json:"path" yaml:"path"`

	// Sheet is the worksheet holding the publication rows.
	Sheet string `json:"sheet" yaml:"sheet"`

	// TitleRows is the number of leading rows discarded before the header
	// row. The usual workbook layout has one title row, so the second
	// physical row supplies the column names.
	TitleRows int `json:"title_rows" yaml:"title_rows"`
}

// MatchConfig names the designated author columns in the publications sheet.
type MatchConfig struct {
	// FirstAuthorColumn is the header of the first-author names+affiliations column.
	FirstAuthorColumn string `json:"first_author_column" yaml:"first_author_column"`

	// CorrAuthorColumn is the header of the corresponding-author names+affiliations column.
	CorrAuthorColumn string `json:"corr_author_column" yaml:"corr_author_column"`

	// AllAuthorsColumn is the header of the all-authors names+affiliations column.
	AllAuthorsColumn string `json:"all_authors_column" yaml:"all_authors_column"`

	// StatusColumn is the header given to the added status column (default "status").
	StatusColumn string `json:"status_column" yaml:"status_column"`
}

// ExportConfig holds settings for writing the tagged output workbook.
type ExportConfig struct {
	// Path is the output workbook (.xlsx) path.
	Path string `json:"path" yaml:"path"`

	// Sheet is the output worksheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// HistoryDir is the directory holding the SQLite database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxRuns limits how many runs a listing returns (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}
