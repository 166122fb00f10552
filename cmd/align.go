package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// alignCmd aligns two sequences
var alignCmd = &cobra.Command{
	Use:   "align [seq1 file] [seq2 file]",
	Short: "Pairwise alignment of two sequences",
	Long: `Align the sequences in two files end to end (Needleman-Wunsch) or,
with --local, find the best-scoring local alignment (Smith-Waterman).
Scoring defaults to match 2, mismatch -1, gap open -5, gap extend -1 and
can be overridden in seqmap.yaml`,
	Run: seqmap.AlignCmd,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringP("out", "o", "", "Output file name for the alignment (default stdout)")
	alignCmd.Flags().BoolP("local", "l", false, "Local (Smith-Waterman) instead of global alignment")
}
