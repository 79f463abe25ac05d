package job

import (
	"sync"

	"github.com/serpent-os/tuirun/internal/output"
)

type recorder struct {
	mu     sync.Mutex
	events []any
}

func (r *recorder) sink() output.Sink {
	return output.SinkFunc(func(event any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, event)
	})
}

func (r *recorder) lines(stream string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []string
	for _, e := range r.events {
		if l, ok := e.(output.LogLineEvent); ok && l.Stream == stream {
			lines = append(lines, l.Line)
		}
	}
	return lines
}

func (r *recorder) phases() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var phases []string
	for _, e := range r.events {
		if s, ok := e.(output.StatusEvent); ok {
			phases = append(phases, s.Phase)
		}
	}
	return phases
}
