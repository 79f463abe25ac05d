package cmd

import (
	"fmt"

	"github.com/serpent-os/tuirun/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the tuirun version",
	Long:    "Print the version, commit and build date of the tuirun binary.",
	GroupID: groupOther,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
