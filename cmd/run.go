package cmd

import (
	"context"
	"path/filepath"

	"github.com/serpent-os/tuirun/internal/job"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:     "run [flags] -- <command> [args...]",
	Short:   "Run a local command with a live view",
	Long:    "Run a local command in the background while a live view tracks it. Its output is kept in the scrollback and tuirun exits with the command's exit code.",
	Args:    cobra.MinimumNArgs(1),
	GroupID: groupJobs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close(cmd.Context())

		lines := s.cfg.Render.Lines
		if cmd.Flags().Changed("lines") {
			if lines, err = cmd.Flags().GetInt("lines"); err != nil {
				return err
			}
		}

		spec := job.ExecSpec{Name: args[0], Args: args[1:]}
		return s.runJob(cmd.Context(), cmd.OutOrStdout(), filepath.Base(args[0]), lines,
			func(ctx context.Context, sink output.Sink) (job.Result, error) {
				return job.Exec(ctx, sink, spec)
			})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("lines", 0, "Height of the live view (defaults to render.lines)")
}
