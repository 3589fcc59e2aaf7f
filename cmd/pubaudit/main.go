// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubaudit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubaudit CLI.
var rootCmd = &cobra.Command{
	Use:   "pubaudit",
	Short: "Cross-reference a personnel roster against a publications workbook",
	Long: `pubaudit loads a roster of personnel names from one workbook, matches
them against the author fields of a publications workbook, and writes a
tagged copy where each publication row carries a status column:

  1      a roster name appears in the first-author or corresponding-author field
  0      a roster name appears only in the all-authors field
  empty  no roster name appears anywhere

Matching is substring-based over the free-text name+affiliation columns;
lead involvement (1) wins over coauthorship (0) when a row qualifies for both.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubaudit.yaml or ~/.config/pubaudit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubaudit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubaudit"))
		}
	}

	viper.SetEnvPrefix("PUBAUDIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
