// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubaudit/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the personnel names extracted from the roster workbook",
	Long: `Roster loads the name column from the roster worksheet and prints the
extracted names in sheet order, duplicates included unless --dedupe is set.
Useful for checking what the tagger will actually match against.`,
	RunE: runRoster,
}

func runRoster(cmd *cobra.Command, args []string) error {
	cfg := rosterConfig(cmd)
	if cfg.Path == "" {
		return fmt.Errorf("roster workbook required: pass --roster or set roster.path")
	}

	names, err := roster.Load(cfg.Path, cfg.Sheet, cfg.NameColumn)
	if err != nil {
		return err
	}
	if cfg.Dedupe {
		names = roster.Dedupe(names)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	for _, n := range names {
		fmt.Println(n)
	}
	fmt.Fprintf(os.Stderr, "\n%d name(s)\n", len(names))
	return nil
}

func init() {
	addRosterFlags(rosterCmd)
	rosterCmd.Flags().Bool("json", false, "output names as JSON")

	rootCmd.AddCommand(rosterCmd)
}
