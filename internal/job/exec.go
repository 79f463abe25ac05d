package job

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/serpent-os/tuirun/internal/output"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

type ExecSpec struct {
	Name string
	Args []string
	Dir  string
	Env  []string // appended to the current environment
}

// Exec runs a local command, streaming its stdout and stderr to sink line by
// line. It returns once the command exits; cancelling ctx kills it.
func Exec(ctx context.Context, sink output.Sink, spec ExecSpec) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "job.Exec")
	defer span.End()
	span.SetAttributes(attribute.String("job.command", spec.Name))

	start := time.Now()
	output.EmitStatus(sink, output.PhaseStarting, spec.Name, "")

	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("failed to attach stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, fmt.Errorf("failed to attach stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("failed to start %s: %w", spec.Name, err)
	}
	output.EmitStatus(sink, output.PhaseRunning, spec.Name, fmt.Sprintf("pid %d", cmd.Process.Pid))

	var lines atomic.Int64
	var g errgroup.Group
	g.Go(func() error { return pump(stdout, output.StreamStdout, sink, &lines) })
	g.Go(func() error { return pump(stderr, output.StreamStderr, sink, &lines) })
	pumpErr := g.Wait()
	waitErr := cmd.Wait()

	res := Result{Lines: int(lines.Load()), Duration: time.Since(start)}
	if ctx.Err() != nil {
		return res, ctx.Err()
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			span.SetStatus(codes.Error, waitErr.Error())
			return res, fmt.Errorf("%s failed: %w", spec.Name, waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	if pumpErr != nil {
		span.SetStatus(codes.Error, pumpErr.Error())
		return res, fmt.Errorf("failed to read output of %s: %w", spec.Name, pumpErr)
	}

	span.SetAttributes(attribute.Int("job.exit_code", res.ExitCode), attribute.Int("job.lines", res.Lines))
	output.EmitStatus(sink, output.PhaseExited, spec.Name, fmt.Sprintf("exit code %d", res.ExitCode))
	return res, nil
}
