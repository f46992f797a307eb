package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/expar/pkg/core/version"
)

var showComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// No config or engine needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		if showComponents {
			for _, name := range version.Components() {
				fmt.Fprintf(out, "  %-8s %s\n", name, version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&showComponents, "components", false, "list component versions")
	rootCmd.AddCommand(versionCmd)
}
