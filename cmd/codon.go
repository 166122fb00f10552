package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// codonCmd computes codon usage statistics
var codonCmd = &cobra.Command{
	Use:   "codon",
	Short: "Codon usage, GC3 and CAI of a coding region",
	Long: `Tally codon usage over the input's first CDS feature (or the whole
sequence if it has none): per-codon counts and synonymous fractions, GC
and GC3 content, and the codon adaptation index against the E. coli
reference table`,
	Run: seqmap.CodonCmd,
}

func init() {
	rootCmd.AddCommand(codonCmd)

	codonCmd.Flags().StringP("in", "i", "", "Input sequence file <GenBank/FASTA/EMBL>")
	codonCmd.Flags().StringP("out", "o", "", "Output file name for the statistics (default stdout)")
	codonCmd.Flags().StringP("table", "t", "", "Also include a reference table (ecoli, yeast, human)")
}
