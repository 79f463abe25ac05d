package runtime

//go:generate mockgen -source=runtime.go -destination=mock_runtime.go -package=runtime

import (
	"context"
	"io"
)

// Mount bind mounts a host directory into the container.
type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

type ContainerConfig struct {
	Image      string
	Name       string
	Cmd        []string
	Env        []string // e.g., ["KEY=value", "FOO=bar"]
	WorkingDir string
	Mounts     []Mount
	Labels     map[string]string
}

type PullProgress struct {
	LayerID string
	Status  string
	Current int64
	Total   int64
}

// Runtime abstracts container runtime operations (Docker, Podman, etc.)
type Runtime interface {
	Healthy(ctx context.Context) error
	// PullImage closes progress, if non-nil, before returning.
	PullImage(ctx context.Context, image string, progress chan<- PullProgress) error
	Start(ctx context.Context, config ContainerConfig) (string, error)
	// StreamLogs copies the container's output until it exits or ctx is done.
	StreamLogs(ctx context.Context, containerID string, stdout, stderr io.Writer) error
	// Wait blocks until the container stops and returns its exit code.
	Wait(ctx context.Context, containerID string) (int, error)
	// Remove force-removes the container. A missing container is not an error.
	Remove(ctx context.Context, containerName string) error
}
