package cmd

import (
	"path/filepath"

	"github.com/serpent-os/tuirun/internal/config"
	"github.com/serpent-os/tuirun/internal/paths"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:     "paths",
	Short:   "Print the host and guest directories of a build job",
	Long:    "Print every directory a build job uses, on the host and inside the sandbox. Nothing is created.",
	Args:    cobra.NoArgs,
	GroupID: groupOther,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Get()
		if err != nil {
			return err
		}
		spec, err := sandboxSpec(cmd, &session{cfg: cfg})
		if err != nil {
			return err
		}

		recipeDir, err := filepath.Abs(filepath.Dir(spec.Recipe))
		if err != nil {
			return err
		}
		hostRoot, err := filepath.Abs(spec.HostRoot)
		if err != nil {
			return err
		}

		return paths.Format(cmd.OutOrStdout(), paths.Layout(spec.ID(), recipeDir, hostRoot, spec.GuestRoot))
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	addJobFlags(pathsCmd)
}
