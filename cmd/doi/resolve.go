package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <doi>",
	Short: "Resolve a DOI to its destination URL",
	Long: `Resolve a DOI to its current destination URL.

The DOI may be given as a bare number, a doi: prefixed form, or a full
https://doi.org/ URL.

Examples:
  doi resolve 10.1109/TCSII.2024.3366282
  doi resolve https://doi.org/10.1038/nature12373 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// ResolveResult is the JSON output for the resolve command.
type ResolveResult struct {
	DOI string `json:"doi"`
	URL string `json:"url"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	d := newDOI(args[0])

	resolved, err := d.Resolve(cmd.Context())
	if err != nil {
		exitWithResolverError(err)
	}

	if humanOutput {
		fmt.Println(resolved)
		return nil
	}
	return outputJSON(ResolveResult{DOI: d.String(), URL: resolved})
}
