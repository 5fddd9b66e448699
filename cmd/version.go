package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dimi-r1/create-fb-react/internal/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and repository information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
