package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Inline renders a fixed-height viewport below the current cursor line
// without switching to the alternate screen. Between calls the cursor rests
// at column 0 of the viewport's first row. Each operation is assembled in
// memory and written with a single Write so a frame is never half visible.
type Inline struct {
	mu    sync.Mutex
	out   io.Writer
	buf   bytes.Buffer
	o     *termenv.Output
	lines int
}

func NewInline(out io.Writer) *Inline {
	t := &Inline{out: out}
	t.o = termenv.NewOutput(&t.buf, termenv.WithProfile(termenv.Ascii))
	return t
}

// Init hides the cursor and scrolls enough blank rows into view to hold the
// viewport.
func (t *Inline) Init(lines int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = lines
	t.o.WriteString("\r")
	t.o.HideCursor()
	t.reserve()
	return t.flush()
}

func (t *Inline) Width() int {
	return widthOf(t.out)
}

// Draw repaints every viewport row, truncating rows to the terminal width so
// none of them wraps into the next.
func (t *Inline) Draw(lines []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lines <= 0 {
		return nil
	}

	width := widthOf(t.out)
	for i := 0; i < t.lines; i++ {
		if i > 0 {
			t.o.WriteString("\r\n")
		}
		t.o.WriteString("\r")
		t.o.ClearLine()
		if i < len(lines) {
			t.o.WriteString(ansi.Truncate(lines[i], width, ""))
		}
	}
	if t.lines > 1 {
		t.o.CursorUp(t.lines - 1)
	}
	t.o.WriteString("\r")
	return t.flush()
}

// InsertBefore clears the viewport, writes lines where it was and reserves a
// fresh viewport below them. The caller redraws afterwards.
func (t *Inline) InsertBefore(lines []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.o.WriteString("\r")
	t.eraseBelow()
	for _, line := range lines {
		t.o.WriteString(line)
		t.o.WriteString("\r\n")
	}
	t.reserve()
	return t.flush()
}

func (t *Inline) ShowCursor() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.o.ShowCursor()
	return t.flush()
}

// Clear blanks the viewport rows and leaves the cursor where the viewport
// started, so whatever runs next writes from there.
func (t *Inline) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.o.WriteString("\r")
	t.eraseBelow()
	return t.flush()
}

func (t *Inline) reserve() {
	if t.lines <= 1 {
		return
	}
	t.o.WriteString(strings.Repeat("\r\n", t.lines-1))
	t.o.CursorUp(t.lines - 1)
}

func (t *Inline) eraseBelow() {
	fmt.Fprintf(t.o, termenv.CSI+termenv.EraseDisplaySeq, 0)
}

func (t *Inline) flush() error {
	defer t.buf.Reset()
	if t.buf.Len() == 0 {
		return nil
	}
	if _, err := t.out.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}
