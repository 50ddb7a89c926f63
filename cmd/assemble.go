package cmd

import (
	"github.com/KonsKons26/dna-tools/internal/assemble"
	"github.com/spf13/cobra"
)

// assembleCmd is for merging a pool of overlapping reads into a single
// consensus sequence
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble overlapping reads into a single consensus sequence",
	Run:                        assemble.AssembleCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Assemble a pool of overlapping DNA reads into one consensus sequence.

The pool is reduced greedily: at every step the remaining read with the
highest overlap score against the current consensus is merged into it,
until a single sequence is left. Ties between overlaps are broken
deterministically, so the same pool always produces the same consensus.`,
}

// set flags
func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringP("in", "i", "", "input FASTA with the reads to assemble")
	assembleCmd.Flags().StringP("out", "o", "", "output FASTA for the consensus sequence")
	assembleCmd.Flags().IntP("workers", "w", 0, "goroutines scanning merge candidates (0 = all CPUs)")
}
