package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd generates Markdown documentation pages for every command
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the dna-tools commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create docs directory %s: %v", dir, err)
		}
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

// set flags
func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the Markdown files to")
}
