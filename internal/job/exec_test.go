package job

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/serpent-os/tuirun/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecStreamsBothStreams(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	res, err := Exec(t.Context(), rec.sink(), ExecSpec{
		Name: "sh",
		Args: []string{"-c", "echo one; echo two; echo oops >&2"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, 3, res.Lines)
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"one", "two"}, rec.lines(output.StreamStdout))
	assert.Equal(t, []string{"oops"}, rec.lines(output.StreamStderr))
	assert.Equal(t, []string{output.PhaseStarting, output.PhaseRunning, output.PhaseExited}, rec.phases())
}

func TestExecReportsExitCode(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	res, err := Exec(t.Context(), rec.sink(), ExecSpec{Name: "sh", Args: []string{"-c", "exit 3"}})

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)

	var exitErr *ExitError
	require.ErrorAs(t, res.Err(), &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestExecPassesDirAndEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rec := &recorder{}
	_, err := Exec(t.Context(), rec.sink(), ExecSpec{
		Name: "sh",
		Args: []string{"-c", "pwd; echo $TUIRUN_TEST_VALUE"},
		Dir:  dir,
		Env:  []string{"TUIRUN_TEST_VALUE=hello"},
	})

	require.NoError(t, err)
	out := rec.lines(output.StreamStdout)
	require.Len(t, out, 2)
	assert.True(t, strings.HasSuffix(out[0], strings.TrimPrefix(dir, "/private")))
	assert.Equal(t, "hello", out[1])
}

func TestExecFailsForUnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := Exec(t.Context(), (&recorder{}).sink(), ExecSpec{Name: "tuirun-definitely-not-a-command"})

	assert.ErrorContains(t, err, "failed to start tuirun-definitely-not-a-command")
}

func TestExecStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Exec(ctx, (&recorder{}).sink(), ExecSpec{Name: "sleep", Args: []string{"10"}})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecFailsOnOverlongLineWithoutBlocking(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	rec := &recorder{}
	_, err := Exec(ctx, rec.sink(), ExecSpec{
		Name: "sh",
		Args: []string{"-c", "head -c 2000000 /dev/zero | tr '\\0' a; echo; head -c 1000000 /dev/zero | tr '\\0' b; echo; echo done >&2"},
	})

	require.ErrorIs(t, err, bufio.ErrTooLong)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, "failed to read output of sh")
	assert.Equal(t, []string{"done"}, rec.lines(output.StreamStderr))
}
