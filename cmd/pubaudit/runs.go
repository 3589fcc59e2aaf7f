// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubaudit/internal/history"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded tagging runs",
	Long: `Runs lists past tagging runs from the history database, newest first,
with their inputs and per-status counts.`,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg := historyConfig(cmd)

	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-19s  %-30s  %-6s  %-5s  %-8s  %s\n",
		"ID", "Started", "Publications", "Rows", "Lead", "Coauthor", "Unmatched")
	fmt.Println(strings.Repeat("-", 96))

	for _, r := range runs {
		fmt.Printf("%-4d  %-19s  %-30s  %-6d  %-5d  %-8d  %d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), truncateLeft(r.PubsPath, 30),
			r.Rows, r.Lead, r.Coauthor, r.Unmatched)
	}
	return nil
}

// truncateLeft keeps the trailing max runes of s, prefixing "..." when it
// cuts. Rune-based so multi-byte path names are never split mid-character.
func truncateLeft(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return "..." + string(r[len(r)-(max-3):])
}

func init() {
	runsCmd.Flags().String("history-dir", defaultHistoryDir, "directory for the run-history database")
	runsCmd.Flags().Int("limit", 0, "maximum runs to list (0 = store default)")
	runsCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(runsCmd)
}
