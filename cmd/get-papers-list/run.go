// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/eutils"
	"github.com/pdiddy/pubmed-papers/internal/report"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// maxResultsWarnThreshold triggers a non-fatal warning for very large runs.
const maxResultsWarnThreshold = 10000

var (
	// errNoMatches means the search itself returned zero PMIDs.
	errNoMatches = errors.New("no papers matched the query")

	// errInterrupted means the user cancelled the run with SIGINT.
	errInterrupted = errors.New("interrupted")
)

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	debug, _ := cmd.Flags().GetBool("debug")
	outputFile, _ := cmd.Flags().GetString("file")
	keywordsFile, _ := cmd.Flags().GetString("keywords-file")

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if !cmd.Flags().Changed("max-results") && viper.IsSet("max_results") {
		maxResults = viper.GetInt("max_results")
	}
	if maxResults <= 0 {
		return fmt.Errorf("max-results must be a positive integer")
	}
	if maxResults > maxResultsWarnThreshold {
		fmt.Fprintln(os.Stderr, "Warning: large result sets may take significant time and may be rate-limited")
	}

	cfg := types.DefaultClientConfig()
	cfg.Email = resolveCredential(cmd, "email", "email", secrets.KeyEmail)
	cfg.APIKey = resolveCredential(cmd, "api-key", "api_key", secrets.KeyAPIKey)

	debugw := io.Writer(io.Discard)
	if debug {
		debugw = os.Stderr
		fmt.Fprintf(debugw, "searching PubMed for: %s (max %d results)\n", query, maxResults)
		if cfg.Email != "" {
			fmt.Fprintf(debugw, "using contact email: %s\n", cfg.Email)
		}
		if cfg.APIKey != "" {
			fmt.Fprintln(debugw, "using API key for enhanced rate limits")
		}
	}

	kw := classify.DefaultKeywords()
	if keywordsFile != "" {
		var err error
		if kw, err = classify.LoadKeywords(keywordsFile); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client := eutils.NewClient(cfg)

	pmids, err := client.Search(ctx, query, maxResults)
	if err != nil {
		return interruptedOr(ctx, err)
	}
	if len(pmids) == 0 {
		return errNoMatches
	}
	fmt.Fprintf(debugw, "found %d papers, fetching details\n", len(pmids))

	papers, err := client.FetchDetails(ctx, pmids, debugw)
	if err != nil {
		return interruptedOr(ctx, err)
	}
	fmt.Fprintf(debugw, "retrieved details for %d papers\n", len(papers))

	filtered := classify.New(kw).FilterPapers(papers)
	if len(filtered) == 0 {
		fmt.Fprintln(debugw, "no papers with pharmaceutical/biotech company affiliations")
		return nil
	}
	fmt.Fprintf(debugw, "%d papers have non-academic authors\n", len(filtered))

	out := io.Writer(os.Stdout)
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(filtered, out); err != nil {
		return err
	}

	if outputFile != "" {
		fmt.Fprintf(debugw, "results written to %s\n", outputFile)
	} else {
		fmt.Fprintln(debugw, "results written to stdout")
	}
	return nil
}

// interruptedOr maps errors caused by SIGINT to errInterrupted so main
// can exit with the dedicated status code.
func interruptedOr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errInterrupted
	}
	return err
}

// resolveCredential looks up an identity setting in precedence order:
// command-line flag, then viper (config file or GET_PAPERS_* environment),
// then the .secrets/ directory.
func resolveCredential(cmd *cobra.Command, flag, configKey, secretKey string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(configKey); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}
