package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/serpent-os/tuirun/internal/config"
	"github.com/serpent-os/tuirun/internal/env"
	"github.com/serpent-os/tuirun/internal/job"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/ui/components"
	"github.com/serpent-os/tuirun/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tuirun",
	Short: "Run jobs behind a live terminal view",
	Long:  "tuirun runs commands in the background while a small live view tracks their progress.",
	Example: `  tuirun run -- make -j8
  tuirun build --name nano --version 8.0 --release 1 -- ./build.sh
  tuirun paths --name nano --version 8.0 --release 1`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Version = version.Version()
	rootCmd.SetVersionTemplate(version.String() + "\n")
	configureHelp(rootCmd)
}

// Execute runs the command line. Errors that were not already shown while
// running are printed to stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !output.IsSilent(err) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *job.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

func printError(w io.Writer, err error) {
	view := components.NewErrorDisplay().Show(output.ErrorEvent{Title: err.Error()}).View()
	_, _ = fmt.Fprint(w, view)
}

func initConfig(_ *cobra.Command, _ []string) error {
	env.Init()
	return config.Init()
}
