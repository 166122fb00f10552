package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// orfsCmd scans all six frames for open reading frames
var orfsCmd = &cobra.Command{
	Use:   "orfs",
	Short: "Find open reading frames in all six frames",
	Long: `Scan every reading frame of both strands for ORFs: an ATG through
the next in-frame stop codon (or the end of the sequence). Results are
sorted by protein length, longest first`,
	Run: seqmap.ORFsCmd,
}

func init() {
	rootCmd.AddCommand(orfsCmd)

	orfsCmd.Flags().StringP("in", "i", "", "Input sequence file <GenBank/FASTA/EMBL>")
	orfsCmd.Flags().StringP("out", "o", "", "Output file name for the ORFs (default stdout)")
	orfsCmd.Flags().IntP("min-aa", "m", 0, "Minimum ORF length in amino acids, stop excluded")
}
