package cmd

import (
	"context"

	"github.com/serpent-os/tuirun/internal/job"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/runtime"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:     "build [flags] -- <command> [args...]",
	Short:   "Run a build command in a sandbox container",
	Long:    "Run a build command inside a container with the job's directories mounted, while a live view tracks it.",
	Args:    cobra.MinimumNArgs(1),
	GroupID: groupJobs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close(cmd.Context())

		spec, err := sandboxSpec(cmd, s)
		if err != nil {
			return err
		}
		spec.Cmd = args

		rt, err := runtime.NewDockerRuntime(s.logger)
		if err != nil {
			return err
		}

		return s.runJob(cmd.Context(), cmd.OutOrStdout(), spec.ID().String(), s.cfg.Render.Lines,
			func(ctx context.Context, sink output.Sink) (job.Result, error) {
				return job.Sandbox(ctx, rt, sink, spec)
			})
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addJobFlags(buildCmd)
	buildCmd.Flags().String("image", "", "Container image (defaults to sandbox.image)")
	buildCmd.Flags().StringArrayP("env", "e", nil, "Environment variable for the build, as KEY=value")
}

// addJobFlags registers the flags identifying a build job and its roots.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Package name")
	cmd.Flags().String("version", "", "Package version")
	cmd.Flags().String("release", "", "Package release")
	cmd.Flags().String("recipe", "stone.yaml", "Path to the recipe file")
	cmd.Flags().String("host-root", "", "Host root directory (defaults to sandbox.host_root)")
	cmd.Flags().String("guest-root", "", "Guest root directory (defaults to sandbox.guest_root)")
	for _, name := range []string{"name", "version", "release"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func sandboxSpec(cmd *cobra.Command, s *session) (job.SandboxSpec, error) {
	flags := cmd.Flags()
	spec := job.SandboxSpec{
		Image:     s.cfg.Sandbox.Image,
		HostRoot:  s.cfg.Sandbox.HostRoot,
		GuestRoot: s.cfg.Sandbox.GuestRoot,
	}

	strs := map[string]*string{
		"name":    &spec.Name,
		"version": &spec.Version,
		"release": &spec.Release,
		"recipe":  &spec.Recipe,
	}
	if flags.Lookup("image") != nil {
		strs["image"] = &spec.Image
	}
	for name, dst := range strs {
		v, err := flags.GetString(name)
		if err != nil {
			return spec, err
		}
		if v != "" {
			*dst = v
		}
	}
	for name, dst := range map[string]*string{"host-root": &spec.HostRoot, "guest-root": &spec.GuestRoot} {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			if err != nil {
				return spec, err
			}
			*dst = v
		}
	}
	if flags.Lookup("env") != nil {
		env, err := flags.GetStringArray("env")
		if err != nil {
			return spec, err
		}
		spec.Env = env
	}
	return spec, nil
}
