package terminal

import (
	"fmt"
	"io"
	"sync"
)

// Plain is the backend for non-interactive output (pipes, files, CI logs).
// Frames are discarded; only scrollback lines are written, one per line.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Init(int) error      { return nil }
func (p *Plain) Width() int          { return DefaultWidth }
func (p *Plain) Draw([]string) error { return nil }
func (p *Plain) ShowCursor() error   { return nil }
func (p *Plain) Clear() error        { return nil }

func (p *Plain) InsertBefore(lines []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}
