package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bibtexCmd)
}

var bibtexCmd = &cobra.Command{
	Use:   "bibtex <doi>",
	Short: "Fetch a BibTeX entry for a DOI",
	Long: `Fetch the metadata for a DOI formatted as a BibTeX entry.

The entry is printed as plain text in both output modes.

Example:
  doi bibtex 10.1109/TCSII.2024.3366282 >> refs.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runBibtex,
}

func runBibtex(cmd *cobra.Command, args []string) error {
	d := newDOI(args[0])

	entry, err := d.BibTeX(cmd.Context())
	if err != nil {
		exitWithResolverError(err)
	}

	fmt.Println(strings.TrimRight(entry, "\n"))
	return nil
}
