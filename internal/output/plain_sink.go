package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// PlainSink writes every displayable event as a line of text. It is safe for
// use by several goroutines, since a job pumps stdout and stderr concurrently.
type PlainSink struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

func NewPlainSink(out io.Writer) *PlainSink {
	if out == nil {
		out = os.Stdout
	}
	return &PlainSink{out: out}
}

// Err returns the first write error encountered, if any.
func (s *PlainSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *PlainSink) emit(event any) {
	line, ok := FormatEventLine(event)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.out, line); err != nil && s.err == nil {
		s.err = err
	}
}
