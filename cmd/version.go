package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorwall",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		fmt.Fprintln(out, "Cantilever Retaining Wall Stem Checker")
		fmt.Fprintln(out, "Based on the JSCE Standard Specifications for Concrete Structures")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
