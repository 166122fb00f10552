package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// primersCmd designs PCR primer pairs for a region
var primersCmd = &cobra.Command{
	Use:   "primers",
	Short: "Design PCR primer pairs for a region of the input",
	Long: `Generate forward candidates anchored at the region start and
reverse candidates at the region end, one per length within the
configured bounds. Candidates outside the Tm/GC windows are dropped and
the rest are paired and ranked by Tm difference, then self-annealing
risk`,
	Run: seqmap.PrimersCmd,
}

func init() {
	rootCmd.AddCommand(primersCmd)

	primersCmd.Flags().StringP("in", "i", "", "Input sequence file <GenBank/FASTA/EMBL>")
	primersCmd.Flags().StringP("out", "o", "", "Output file name for the pairs (default stdout)")
	primersCmd.Flags().IntP("start", "s", 0, "Region start (0-based)")
	primersCmd.Flags().IntP("end", "e", 0, "Region end, exclusive (default: sequence end)")
}
