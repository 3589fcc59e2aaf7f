// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Report is the YAML run report optionally written after a tagging run.
type Report struct {
	RosterPath        string `json:"roster_path" yaml:"roster_path"`
	RosterSize        int    `json:"roster_size" yaml:"roster_size"`
	PublicationsPath  string `json:"publications_path" yaml:"publications_path"`
	PublicationsSheet string `json:"publications_sheet" yaml:"publications_sheet"`
	OutputPath        string `json:"output_path" yaml:"output_path"`

	Summary Summary `json:"summary" yaml:"summary"`

	// Rows holds one entry per data row in sheet order.
	Rows []RowStatus `json:"rows" yaml:"rows"`
}

// RowStatus pairs a 1-based data row number with its assigned status cell
// value ("1", "0", or "" for no match).
type RowStatus struct {
	Row    int    `json:"row" yaml:"row"`
	Status string `json:"status" yaml:"status"`
}

// BuildReport assembles a Report from a tagging result.
func BuildReport(res *Result, rosterPath string, rosterSize int, pubsPath, pubsSheet, outPath string) Report {
	rows := make([]RowStatus, len(res.Statuses))
	for i, s := range res.Statuses {
		rows[i] = RowStatus{Row: i + 1, Status: s.Cell()}
	}
	return Report{
		RosterPath:        rosterPath,
		RosterSize:        rosterSize,
		PublicationsPath:  pubsPath,
		PublicationsSheet: pubsSheet,
		OutputPath:        outPath,
		Summary:           res.Summary,
		Rows:              rows,
	}
}

// WriteReport marshals the report to YAML at path.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
