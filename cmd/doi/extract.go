package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/doi/internal/pdf"
)

var extractResolve bool

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractResolve, "resolve", false, "Also resolve the extracted DOI to its destination URL")
}

var extractCmd = &cobra.Command{
	Use:   "extract <pdf-file>",
	Short: "Extract a DOI from a PDF file",
	Long: `Extract a DOI from a PDF file by scanning the first pages for a DOI
pattern.

Exits with a data error if the file contains no recognizable DOI.

Examples:
  doi extract paper.pdf
  doi extract paper.pdf --resolve`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

// ExtractResult is the JSON output for the extract command.
type ExtractResult struct {
	File string `json:"file"`
	DOI  string `json:"doi"`
	URL  string `json:"url,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	found, err := pdf.ExtractDOI(path)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", path, err)
	}
	if found == "" {
		exitWithError(ExitDataError, "no DOI found in %s", path)
	}

	result := ExtractResult{File: path, DOI: found}

	if extractResolve {
		d := newDOI(found)
		resolved, err := d.Resolve(cmd.Context())
		if err != nil {
			exitWithResolverError(err)
		}
		result.URL = resolved
	}

	if humanOutput {
		fmt.Println(result.DOI)
		if result.URL != "" {
			fmt.Println(result.URL)
		}
		return nil
	}
	return outputJSON(result)
}
