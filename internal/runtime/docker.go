package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

// DockerRuntime implements Runtime using the Docker API.
type DockerRuntime struct {
	client *client.Client
	log    *slog.Logger
}

func NewDockerRuntime(logger *slog.Logger) (*DockerRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DockerRuntime{client: cli, log: logger}, nil
}

func (d *DockerRuntime) Healthy(ctx context.Context) error {
	if _, err := d.client.Ping(ctx); err != nil {
		return fmt.Errorf("cannot connect to Docker daemon: %w", err)
	}
	return nil
}

func (d *DockerRuntime) PullImage(ctx context.Context, imageName string, progress chan<- PullProgress) error {
	if progress != nil {
		defer close(progress)
	}

	reader, err := d.client.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			d.log.Warn("failed to close image pull reader", "error", err)
		}
	}()

	return decodePullProgress(reader, progress)
}

// decodePullProgress reads the JSON message stream of an image pull.
func decodePullProgress(r io.Reader, progress chan<- PullProgress) error {
	decoder := json.NewDecoder(r)
	for {
		var msg struct {
			Status         string `json:"status"`
			ID             string `json:"id"`
			Error          string `json:"error"`
			ProgressDetail struct {
				Current int64 `json:"current"`
				Total   int64 `json:"total"`
			} `json:"progressDetail"`
		}
		if err := decoder.Decode(&msg); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if msg.Error != "" {
			return fmt.Errorf("image pull failed: %s", msg.Error)
		}

		if progress != nil {
			progress <- PullProgress{
				LayerID: msg.ID,
				Status:  msg.Status,
				Current: msg.ProgressDetail.Current,
				Total:   msg.ProgressDetail.Total,
			}
		}
	}
}

func (d *DockerRuntime) Start(ctx context.Context, config ContainerConfig) (string, error) {
	resp, err := d.client.ContainerCreate(ctx,
		&container.Config{
			Image:      config.Image,
			Cmd:        config.Cmd,
			Env:        config.Env,
			WorkingDir: config.WorkingDir,
			Labels:     config.Labels,
		},
		&container.HostConfig{
			Mounts: bindMounts(config.Mounts),
		},
		nil, nil, config.Name,
	)
	if err != nil {
		return "", err
	}

	if err := d.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", err
	}

	return resp.ID, nil
}

func bindMounts(mounts []Mount) []mount.Mount {
	out := make([]mount.Mount, 0, len(mounts))
	for _, m := range mounts {
		out = append(out, mount.Mount{
			Type:     mount.TypeBind,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
	}
	return out
}

func (d *DockerRuntime) StreamLogs(ctx context.Context, containerID string, stdout, stderr io.Writer) error {
	reader, err := d.client.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			d.log.Warn("failed to close logs reader", "error", err)
		}
	}()

	// Without a TTY the stream is multiplexed.
	if _, err := stdcopy.StdCopy(stdout, stderr, reader); err != nil && ctx.Err() == nil {
		return err
	}
	return ctx.Err()
}

func (d *DockerRuntime) Wait(ctx context.Context, containerID string) (int, error) {
	statusCh, errCh := d.client.ContainerWait(ctx, containerID, container.WaitConditionNotRunning)
	select {
	case status := <-statusCh:
		if status.Error != nil && status.Error.Message != "" {
			return int(status.StatusCode), fmt.Errorf("container wait failed: %s", status.Error.Message)
		}
		return int(status.StatusCode), nil
	case err := <-errCh:
		return -1, err
	}
}

func (d *DockerRuntime) Remove(ctx context.Context, containerName string) error {
	err := d.client.ContainerRemove(ctx, containerName, container.RemoveOptions{Force: true})
	if err != nil && !errdefs.IsNotFound(err) {
		return err
	}
	return nil
}
