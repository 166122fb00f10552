package cmd

import (
	"github.com/spf13/cobra"
)

// enzymesCmd lists the built-in restriction enzyme catalog
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List the recognized restriction enzymes",
	Long: `List every enzyme in the built-in catalog with its recognition
sequence and overhang type. With an argument, only enzymes whose name
contains it (or nearly matches it) are listed`,
	Run: enzymeDB.ReadCmd,
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}
