// Package cmd is for command line interactions with the dna-tools application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "dna-tools",
	Short: `Work with DNA sequences in FASTA files.
Assemble overlapping reads into a consensus, reverse complement sequences,
report composition statistics and reading frames, generate random sequences`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file that overrides the defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", "path to a settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
