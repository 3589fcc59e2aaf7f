// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubaudit/internal/history"
	"github.com/pdiddy/pubaudit/internal/match"
	"github.com/pdiddy/pubaudit/internal/roster"
	"github.com/pdiddy/pubaudit/internal/workbook"
	"github.com/pdiddy/pubaudit/pkg/types"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag publication rows with roster involvement and export the result",
	Long: `Tag runs the full pipeline: load the roster names, read the publications
sheet (discarding its title row, using the second row as headers), assign a
status to every row, and write a copy of the table with the status column in
second position.

A roster that fails to load is reported and treated as empty, which tags
every row as unmatched. Missing author columns abort the run and the error
lists the columns the sheet actually has.`,
	RunE: runTag,
}

func runTag(cmd *cobra.Command, args []string) error {
	rosterCfg := rosterConfig(cmd)
	pubsCfg := publicationsConfig(cmd)
	cols := matchColumns(cmd)
	exportCfg := exportConfig(cmd, pubsCfg)

	if rosterCfg.Path == "" {
		return fmt.Errorf("roster workbook required: pass --roster or set roster.path")
	}
	if pubsCfg.Path == "" {
		return fmt.Errorf("publications workbook required: pass --pubs or set publications.path")
	}

	// An unloadable roster is not fatal: the run proceeds with an empty
	// roster and tags every row unmatched, so partial workbooks still
	// produce an inspectable output.
	names := roster.LoadLenient(rosterCfg.Path, rosterCfg.Sheet, rosterCfg.NameColumn, os.Stderr)
	if rosterCfg.Dedupe {
		names = roster.Dedupe(names)
	}
	fmt.Fprintf(os.Stderr, "loaded %d roster name(s)\n", len(names))

	table, err := workbook.ReadSheet(pubsCfg.Path, pubsCfg.Sheet, pubsCfg.TitleRows)
	if err != nil {
		return err
	}

	res, err := match.Tag(table, cols, names)
	if err != nil {
		return err
	}

	if err := workbook.Write(exportCfg.Path, exportCfg.Sheet, res.Table); err != nil {
		return err
	}

	fmt.Printf("tagged %d row(s): %d lead, %d coauthor, %d unmatched\n",
		res.Summary.Rows, res.Summary.Lead, res.Summary.Coauthor, res.Summary.Unmatched)
	fmt.Printf("wrote %s\n", exportCfg.Path)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		rep := match.BuildReport(res, rosterCfg.Path, len(names), pubsCfg.Path, pubsCfg.Sheet, exportCfg.Path)
		if err := match.WriteReport(reportPath, rep); err != nil {
			return err
		}
		fmt.Printf("wrote report %s\n", reportPath)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordRun(historyConfig(cmd), rosterCfg, pubsCfg, exportCfg, len(names), res.Summary)
	}

	return nil
}

// recordRun appends the run to the history store. History is bookkeeping,
// not part of the pipeline, so failures are warnings.
func recordRun(cfg types.HistoryConfig, rosterCfg types.RosterConfig, pubsCfg types.PublicationsConfig, exportCfg types.ExportConfig, rosterSize int, s match.Summary) {
	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.Record(context.Background(), history.Run{
		StartedAt:  time.Now(),
		RosterPath: rosterCfg.Path,
		PubsPath:   pubsCfg.Path,
		OutputPath: exportCfg.Path,
		RosterSize: rosterSize,
		Rows:       s.Rows,
		Lead:       s.Lead,
		Coauthor:   s.Coauthor,
		Unmatched:  s.Unmatched,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run failed: %v\n", err)
	}
}

func init() {
	addRosterFlags(tagCmd)

	tagCmd.Flags().String("pubs", "", "publications workbook (.xlsx) path")
	tagCmd.Flags().String("pubs-sheet", defaultPubsSheet, "publications worksheet name")
	tagCmd.Flags().Int("title-rows", defaultTitleRows, "leading rows discarded before the header row")

	tagCmd.Flags().String("first-author-column", defaultFirstAuthorColumn, "header of the first-author names+affiliations column")
	tagCmd.Flags().String("corr-author-column", defaultCorrAuthorColumn, "header of the corresponding-author names+affiliations column")
	tagCmd.Flags().String("all-authors-column", defaultAllAuthorsColumn, "header of the all-authors names+affiliations column")
	tagCmd.Flags().String("status-column", match.DefaultStatusColumn, "header given to the added status column")

	tagCmd.Flags().String("out", defaultOutputPath, "output workbook (.xlsx) path")
	tagCmd.Flags().String("out-sheet", "", "output worksheet name (default: the publications sheet name)")
	tagCmd.Flags().String("report", "", "also write a YAML run report to this path")

	tagCmd.Flags().String("history-dir", defaultHistoryDir, "directory for the run-history database")
	tagCmd.Flags().Bool("no-history", false, "skip recording this run")

	rootCmd.AddCommand(tagCmd)
}
