// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the single user-facing command: the positional argument is
// the PubMed query itself.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list QUERY",
	Short: "Find PubMed papers with pharmaceutical/biotech company authors",
	Long: `get-papers-list searches PubMed for papers matching a query and keeps only
papers with at least one author affiliated with a pharmaceutical or biotech
company. Results are written as CSV to stdout or to a file.

QUERY supports full PubMed query syntax.

Examples:
  get-papers-list "cancer treatment 2023" --debug --file results.csv
  get-papers-list "diabetes AND drug therapy" --email you@example.com`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")

	rootCmd.Flags().BoolP("debug", "d", false, "print debug information during execution")
	rootCmd.Flags().StringP("file", "f", "", "write results to this file instead of stdout")
	rootCmd.Flags().Int("max-results", 100, "maximum number of results to fetch")
	rootCmd.Flags().String("email", "", "contact email for the PubMed API (recommended)")
	rootCmd.Flags().String("api-key", "", "PubMed API key (optional, raises rate limits)")
	rootCmd.Flags().String("keywords-file", "", "YAML file with extra academic/commercial keywords")
}

func initConfig() {
	// A .env file in the working directory supplies environment variables.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errInterrupted):
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user.")
		os.Exit(ExitInterrupted)
	case errors.Is(err, errNoMatches):
		fmt.Fprintln(os.Stderr, "No papers found for the given query.")
		os.Exit(ExitError)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
