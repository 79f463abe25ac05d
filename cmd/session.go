package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/serpent-os/tuirun/internal/config"
	"github.com/serpent-os/tuirun/internal/job"
	"github.com/serpent-os/tuirun/internal/logging"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/telemetry"
	"github.com/serpent-os/tuirun/internal/tui"
	"github.com/serpent-os/tuirun/internal/ui"
	"github.com/serpent-os/tuirun/internal/version"
)

// session holds what every job command sets up from the configuration.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	shutdown telemetry.Shutdown
}

func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, closeLog: closeLog, shutdown: shutdown}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.shutdown(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("failed to flush traces", "error", err)
	}
	if err := s.closeLog(); err != nil {
		slog.Default().Warn("failed to close log file", "error", err)
	}
}

func (s *session) tuiOptions() []tui.Option {
	return []tui.Option{
		tui.WithTickInterval(s.cfg.Render.Interval()),
		tui.WithLogger(s.logger),
	}
}

type jobFunc func(context.Context, output.Sink) (job.Result, error)

// runJob runs fn behind the live view when stdout is a terminal, and with
// plain line output otherwise. The summary line is written to out afterwards.
func (s *session) runJob(ctx context.Context, out io.Writer, name string, lines int, fn jobFunc) error {
	s.logger.Debug("job starting", "job", name, "interactive", ui.IsInteractive())

	var (
		res job.Result
		err error
	)
	if ui.IsInteractive() {
		res, err = ui.RunJob[job.Result](ctx, version.Version(), name, lines, fn, s.tuiOptions()...)
	} else {
		res, err = fn(ctx, output.NewPlainSink(out))
	}
	if err != nil {
		s.logger.Error("job failed", "job", name, "error", err)
		return err
	}

	s.logger.Info("job finished", "job", name, "exit_code", res.ExitCode, "lines", res.Lines, "duration", res.Duration)
	sink := output.NewPlainSink(out)
	output.EmitResult(sink, output.ResultEvent{
		Job:      name,
		ExitCode: res.ExitCode,
		Lines:    res.Lines,
		Duration: res.Duration,
	})
	if err := sink.Err(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := res.Err(); err != nil {
		return output.Silence(err)
	}
	return nil
}
