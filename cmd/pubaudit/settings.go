// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubaudit/internal/match"
	"github.com/pdiddy/pubaudit/pkg/types"
)

// Default sheet and column names mirror the annual report workbooks this
// tool was built for; all of them can be overridden by flag or config key.
const (
	defaultRosterSheet = "固定人员清单"
	defaultNameColumn  = "姓名"

	defaultPubsSheet = "论文"
	defaultTitleRows = 1

	defaultFirstAuthorColumn = "（医学部）全部第一作者姓名及单位"
	defaultCorrAuthorColumn  = "（医学部）全部通讯作者姓名及单位"
	defaultAllAuthorsColumn  = "全部作者姓名及单位"

	defaultOutputPath = "tagged.xlsx"
	defaultHistoryDir = "history"
)

// stringSetting resolves a string option: an explicitly set flag wins, then
// the viper config key, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

// addRosterFlags registers the roster options shared by tag and roster.
func addRosterFlags(cmd *cobra.Command) {
	cmd.Flags().String("roster", "", "roster workbook (.xlsx) path")
	cmd.Flags().String("roster-sheet", defaultRosterSheet, "roster worksheet name")
	cmd.Flags().String("name-column", defaultNameColumn, "header of the personnel name column")
	cmd.Flags().Bool("dedupe", false, "drop duplicate names, keeping first occurrence")
}

func rosterConfig(cmd *cobra.Command) types.RosterConfig {
	return types.RosterConfig{
		Path:       stringSetting(cmd, "roster", "roster.path"),
		Sheet:      stringSetting(cmd, "roster-sheet", "roster.sheet"),
		NameColumn: stringSetting(cmd, "name-column", "roster.name_column"),
		Dedupe:     boolSetting(cmd, "dedupe", "roster.dedupe"),
	}
}

func publicationsConfig(cmd *cobra.Command) types.PublicationsConfig {
	return types.PublicationsConfig{
		Path:      stringSetting(cmd, "pubs", "publications.path"),
		Sheet:     stringSetting(cmd, "pubs-sheet", "publications.sheet"),
		TitleRows: intSetting(cmd, "title-rows", "publications.title_rows"),
	}
}

func matchColumns(cmd *cobra.Command) match.Columns {
	return match.ColumnsFromConfig(types.MatchConfig{
		FirstAuthorColumn: stringSetting(cmd, "first-author-column", "match.first_author_column"),
		CorrAuthorColumn:  stringSetting(cmd, "corr-author-column", "match.corr_author_column"),
		AllAuthorsColumn:  stringSetting(cmd, "all-authors-column", "match.all_authors_column"),
		StatusColumn:      stringSetting(cmd, "status-column", "match.status_column"),
	})
}

// exportConfig resolves the output path and sheet. The output sheet defaults
// to the publications sheet name so the result reads like the input.
func exportConfig(cmd *cobra.Command, pubs types.PublicationsConfig) types.ExportConfig {
	sheet := stringSetting(cmd, "out-sheet", "export.sheet")
	if sheet == "" {
		sheet = pubs.Sheet
	}
	return types.ExportConfig{
		Path:  stringSetting(cmd, "out", "export.path"),
		Sheet: sheet,
	}
}

// historyConfig resolves the history store settings. MaxRuns comes from
// config alone; tag registers no listing flag, and runs passes its --limit
// straight to List.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	return types.HistoryConfig{
		HistoryDir: stringSetting(cmd, "history-dir", "history.history_dir"),
		MaxRuns:    viper.GetInt("history.max_runs"),
	}
}
