package cmd

import (
	"github.com/spf13/cobra"

	"seqmap/internal/seqmap"
)

// digestCmd finds cut sites and simulates a restriction digestion
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Map cut sites and simulate a restriction digestion",
	Long: `Find every restriction site in the input sequence and cut the
molecule at each one. Fragments are reported largest first, the order
they would load on a gel. Circular molecules produce wrap-around
fragments; every digested fragment is linear`,
	Run: seqmap.DigestCmd,
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringP("in", "i", "", "Input sequence file <GenBank/FASTA/EMBL>")
	digestCmd.Flags().StringP("out", "o", "", "Output file name for the digest (default stdout)")
	digestCmd.Flags().StringP("enzymes", "e", "", "Comma/space separated enzyme names (default: whole catalog)")
	digestCmd.Flags().StringP("gel", "g", "", "Also render a simulated gel image to this file")
}
