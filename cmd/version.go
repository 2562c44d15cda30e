package cmd

import (
	"github.com/spf13/cobra"

	"github.com/finopsforge/azcm/internal/message"
	"github.com/finopsforge/azcm/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of azcm",
	Run: func(cmd *cobra.Command, args []string) {
		message.Info(version.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
