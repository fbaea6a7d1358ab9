// Package main provides the doi CLI entry point.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// Global overrides for the client, applied on top of the config file.
var (
	flagBaseURL string
	flagTimeout time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doi",
	Short: "Resolve DOIs and fetch bibliographic metadata",
	Long: `doi resolves Digital Object Identifiers against the doi.org resolver.

It can resolve a DOI to its publisher landing page, fetch structured or
raw bibliographic metadata, format a BibTeX entry, and extract DOIs
from PDF files. All commands output JSON by default for easy
integration with scripts and agents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for DOI_BASE_URL etc.)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Resolver base URL (default https://doi.org)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Version = Version
}
