package cmd

import (
	"fmt"
	"slices"

	"github.com/serpent-os/tuirun/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Inspect configuration",
	GroupID: groupOther,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.ConfigFilePath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the effective configuration",
	Long:    "Print every configuration key with its effective value after defaults, the config file and TUIRUN_* environment overrides are applied.",
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := viper.AllKeys()
		slices.Sort(keys)
		for _, key := range keys {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, viper.GetString(key)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
