package job

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/serpent-os/tuirun/internal/output"
)

const tracerName = "github.com/serpent-os/tuirun/internal/job"

// maxLineSize bounds a single output line. A longer line fails the job once
// the command has exited.
const maxLineSize = 1024 * 1024

// Result describes a finished job. A non-zero ExitCode is not an error by
// itself; use Err to turn it into one.
type Result struct {
	ExitCode int
	Lines    int
	Duration time.Duration
}

func (r Result) Err() error {
	if r.ExitCode == 0 {
		return nil
	}
	return &ExitError{Code: r.ExitCode}
}

type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// pump emits every line read from r as output of the given stream. After a
// read error the rest of r is discarded, so the writer never blocks on a
// full pipe and still reaches EOF.
func pump(r io.Reader, stream string, sink output.Sink, lines *atomic.Int64) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		output.EmitLogLine(sink, stream, scanner.Text())
		lines.Add(1)
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}
