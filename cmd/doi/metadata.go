package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var metadataRaw bool

func init() {
	rootCmd.AddCommand(metadataCmd)
	metadataCmd.Flags().BoolVar(&metadataRaw, "raw", false, "Print the raw JSON response body verbatim")
}

var metadataCmd = &cobra.Command{
	Use:   "metadata <doi>",
	Short: "Fetch bibliographic metadata for a DOI",
	Long: `Fetch bibliographic metadata for a DOI from the resolver.

By default the structured record (title, authors, type, venue,
publisher) is printed. Use --raw to print the resolver's JSON response
verbatim, including fields not modeled by the structured record.

Examples:
  doi metadata 10.1109/TCSII.2024.3366282
  doi metadata 10.1038/nature12373 --raw
  doi metadata 10.1038/nature12373 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadata,
}

func runMetadata(cmd *cobra.Command, args []string) error {
	d := newDOI(args[0])

	if metadataRaw {
		body, err := d.MetadataRaw(cmd.Context())
		if err != nil {
			exitWithResolverError(err)
		}
		os.Stdout.Write(body)
		if len(body) == 0 || body[len(body)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	meta, err := d.Metadata(cmd.Context())
	if err != nil {
		exitWithResolverError(err)
	}

	if humanOutput {
		fmt.Printf("DOI:     %s\n", meta.DOI)
		if meta.Title != "" {
			fmt.Printf("Title:   %s\n", meta.Title)
		}
		if len(meta.Authors) > 0 {
			fmt.Printf("Authors: %s\n", formatAuthors(meta.Authors))
		}
		if meta.Type != "" {
			fmt.Printf("Type:    %s\n", meta.Type)
		}
		if meta.ContainerTitle != "" {
			fmt.Printf("Venue:   %s\n", meta.ContainerTitle)
		}
		if meta.Publisher != "" {
			fmt.Printf("Publisher: %s\n", meta.Publisher)
		}
		return nil
	}
	return outputJSON(meta)
}
