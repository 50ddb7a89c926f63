package cmd

import (
	"github.com/KonsKons26/dna-tools/internal/dna"
	"github.com/spf13/cobra"
)

// revcompCmd is for reverse complementing the sequences in a FASTA file
var revcompCmd = &cobra.Command{
	Use:                        "revcomp",
	Short:                      "Reverse complement every sequence in a FASTA file",
	Run:                        dna.RevCompCmd,
	SuggestionsMinimumDistance: 2,
}

// statsCmd is for reporting composition statistics per sequence
var statsCmd = &cobra.Command{
	Use:                        "stats",
	Short:                      "Print length, GC content and base composition per sequence",
	Run:                        dna.StatsCmd,
	SuggestionsMinimumDistance: 2,
}

// framesCmd is for printing the six reading frames of each sequence
var framesCmd = &cobra.Command{
	Use:                        "frames",
	Short:                      "Print the six reading frames of every sequence",
	Run:                        dna.FramesCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Print the three forward and three reverse reading frames of every
sequence in a FASTA file, optionally with the index of every in-frame
stop codon (tga, tag, taa).`,
}

// set flags
func init() {
	rootCmd.AddCommand(revcompCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(framesCmd)

	revcompCmd.Flags().StringP("in", "i", "", "input FASTA file")
	revcompCmd.Flags().StringP("out", "o", "", "output FASTA file")

	statsCmd.Flags().StringP("in", "i", "", "input FASTA file")

	framesCmd.Flags().StringP("in", "i", "", "input FASTA file")
	framesCmd.Flags().BoolP("codons", "c", false, "also print in-frame stop codon indexes")
}
