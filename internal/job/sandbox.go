package job

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/paths"
	"github.com/serpent-os/tuirun/internal/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	labelRunID = "dev.serpentos.tuirun.run-id"
	labelJob   = "dev.serpentos.tuirun.job"
)

type SandboxSpec struct {
	Name      string
	Version   string
	Release   string
	Recipe    string // path to the recipe file; its directory is mounted read-only
	Image     string
	HostRoot  string
	GuestRoot string
	Cmd       []string
	Env       []string
}

func (s SandboxSpec) ID() paths.ID {
	return paths.NewID(s.Name, s.Version, s.Release)
}

// Sandbox runs spec.Cmd in a fresh container of spec.Image with the job's
// directories bind mounted, from the guest build directory. The container
// is removed afterwards, whatever the outcome.
func Sandbox(ctx context.Context, rt runtime.Runtime, sink output.Sink, spec SandboxSpec) (Result, error) {
	id := spec.ID()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "job.Sandbox")
	defer span.End()
	span.SetAttributes(attribute.String("job.id", id.String()), attribute.String("job.image", spec.Image))

	start := time.Now()

	if err := rt.Healthy(ctx); err != nil {
		output.EmitError(sink, output.ErrorEvent{
			Title:   "Docker is not available",
			Summary: err.Error(),
			Detail:  "Start the Docker daemon and try again.",
		})
		span.SetStatus(codes.Error, err.Error())
		return Result{}, output.NewSilentError(fmt.Errorf("runtime not healthy: %w", err))
	}

	output.EmitStatus(sink, output.PhasePreparing, id.String(), "")
	p, err := paths.New(id, spec.Recipe, spec.HostRoot, spec.GuestRoot)
	if err != nil {
		return Result{}, fmt.Errorf("failed to prepare %s: %w", id, err)
	}

	output.EmitStatus(sink, output.PhasePulling, id.String(), spec.Image)
	if err := pullImage(ctx, rt, sink, id.String(), spec.Image); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("failed to pull image %s: %w", spec.Image, err)
	}

	runID := uuid.NewString()
	name := fmt.Sprintf("tuirun-%s-%s", id, runID[:8])
	span.SetAttributes(attribute.String("job.run_id", runID))

	output.EmitStatus(sink, output.PhaseStarting, id.String(), name)
	defer func() {
		if err := rt.Remove(context.WithoutCancel(ctx), name); err != nil {
			output.EmitWarning(sink, fmt.Sprintf("failed to remove container %s: %v", name, err))
		}
	}()
	containerID, err := rt.Start(ctx, runtime.ContainerConfig{
		Image:      spec.Image,
		Name:       name,
		Cmd:        spec.Cmd,
		Env:        spec.Env,
		WorkingDir: p.Build().Guest,
		Mounts:     mountsFor(p),
		Labels:     map[string]string{labelRunID: runID, labelJob: id.String()},
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("failed to start %s: %w", name, err)
	}
	output.EmitStatus(sink, output.PhaseRunning, id.String(), shortID(containerID))

	var lines atomic.Int64
	if err := streamLogs(ctx, rt, sink, containerID, &lines); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("failed to stream logs of %s: %w", name, err)
	}

	exitCode, err := rt.Wait(ctx, containerID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("failed to wait for %s: %w", name, err)
	}

	res := Result{ExitCode: exitCode, Lines: int(lines.Load()), Duration: time.Since(start)}
	span.SetAttributes(attribute.Int("job.exit_code", res.ExitCode), attribute.Int("job.lines", res.Lines))
	output.EmitStatus(sink, output.PhaseExited, id.String(), fmt.Sprintf("exit code %d", res.ExitCode))
	return res, nil
}

func pullImage(ctx context.Context, rt runtime.Runtime, sink output.Sink, job, image string) error {
	progress := make(chan runtime.PullProgress)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for p := range progress {
			output.EmitProgress(sink, job, p.LayerID, p.Status, p.Current, p.Total)
		}
	}()

	err := rt.PullImage(ctx, image, progress)
	<-forwarded
	return err
}

// mountsFor bind mounts every host-backed directory. The recipe is read-only.
func mountsFor(p *paths.Paths) []runtime.Mount {
	recipe := p.Recipe()
	var mounts []runtime.Mount
	for _, m := range p.Mounts() {
		mounts = append(mounts, runtime.Mount{
			Source:   m.Host,
			Target:   m.Guest,
			ReadOnly: m.Name == recipe.Name,
		})
	}
	return mounts
}

func streamLogs(ctx context.Context, rt runtime.Runtime, sink output.Sink, containerID string, lines *atomic.Int64) error {
	outR, outW := io.Pipe()
	errR, errW := io.Pipe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := rt.StreamLogs(gctx, containerID, outW, errW)
		outW.CloseWithError(err)
		errW.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		err := pump(outR, output.StreamStdout, sink, lines)
		outR.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		err := pump(errR, output.StreamStderr, sink, lines)
		errR.CloseWithError(err)
		return err
	})
	return g.Wait()
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
