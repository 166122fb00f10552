// Package cmd is for command line interactions with the seqmap engine
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

var enzymeDB = seqmap.NewEnzymeDB()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "seqmap",
	Short: `Analyze nucleotide sequences: restriction maps, digests, ORFs,
codon usage, primer candidates and pairwise alignments`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
