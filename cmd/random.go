package cmd

import (
	"github.com/KonsKons26/dna-tools/internal/dna"
	"github.com/spf13/cobra"
)

// randomCmd is for generating random sequences, mostly for testing the
// other commands against arbitrary input
var randomCmd = &cobra.Command{
	Use:                        "random",
	Short:                      "Generate random sequences and write them to a FASTA file",
	Run:                        dna.RandomCmd,
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntP("length", "n", 0, "length of each generated sequence")
	randomCmd.Flags().IntP("count", "c", 1, "number of sequences to generate")
	randomCmd.Flags().StringP("alphabet", "a", "", "alphabet to draw symbols from")
	randomCmd.Flags().StringP("out", "o", "", "output FASTA file")
}
