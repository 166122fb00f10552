package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// translateCmd translates a nucleotide sequence to protein
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate the input sequence to protein",
	Long: `Translate the input sequence in frame 1 of the chosen strand.
Codons with ambiguous bases become X. Translation stops at the first
stop codon unless --no-stop is passed`,
	Run: seqmap.TranslateCmd,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringP("in", "i", "", "Input sequence file <GenBank/FASTA/EMBL>")
	translateCmd.Flags().StringP("out", "o", "", "Output file name for the protein (default stdout)")
	translateCmd.Flags().IntP("strand", "s", 1, "Strand to translate, 1 or -1")
	translateCmd.Flags().Bool("no-stop", false, "Translate through stop codons")
}
