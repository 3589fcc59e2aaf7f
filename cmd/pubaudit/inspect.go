// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubaudit/internal/workbook"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect WORKBOOK",
	Short: "List the sheets of a workbook, or the columns of one sheet",
	Long: `Inspect prints the worksheet names of a workbook. With --sheet it prints
that sheet's column headers instead, applying the same title-row skip the
tagger uses, so header mismatches can be diagnosed before a run.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	sheet, _ := cmd.Flags().GetString("sheet")

	if sheet == "" {
		sheets, err := workbook.SheetNames(path)
		if err != nil {
			return err
		}
		for _, s := range sheets {
			fmt.Println(s)
		}
		return nil
	}

	skipTitle, _ := cmd.Flags().GetInt("skip-title")
	t, err := workbook.ReadSheet(path, sheet, skipTitle)
	if err != nil {
		return err
	}

	for i, c := range t.Columns {
		fmt.Printf("%d\t%s\n", i, c)
	}
	fmt.Printf("\n%d column(s), %d data row(s)\n", len(t.Columns), len(t.Rows))
	return nil
}

func init() {
	inspectCmd.Flags().String("sheet", "", "worksheet to inspect (default: list sheets)")
	inspectCmd.Flags().Int("skip-title", 0, "leading rows discarded before the header row")

	rootCmd.AddCommand(inspectCmd)
}
