package tui

import "strings"

// Program is the state machine driven by Run. Draw must be callable at any
// time, including before the first Update: Run draws one frame before it
// starts consuming events.
type Program[M any] interface {
	// Lines is the fixed height of the viewport. It is read once per run.
	Lines() int
	// Draw renders the current state into f. It must not mutate state.
	Draw(f *Frame)
	// Update applies a single message.
	Update(msg M)
}

// Frame is the surface a Program draws into: a fixed number of rows, each
// holding one line of (possibly styled) text. Rows wider than Width are
// truncated by the terminal backend.
type Frame struct {
	width int
	rows  []string
}

func NewFrame(width, height int) *Frame {
	if height < 0 {
		height = 0
	}
	return &Frame{width: width, rows: make([]string, height)}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return len(f.rows) }

// Set replaces row i. Rows outside the frame are ignored.
func (f *Frame) Set(i int, line string) {
	if i < 0 || i >= len(f.rows) {
		return
	}
	f.rows[i] = line
}

// SetString fills the frame from the top with the lines of s, the shape
// produced by a View() string. Lines past the frame height are dropped and
// rows below the content are blanked.
func (f *Frame) SetString(s string) {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i := range f.rows {
		if i < len(lines) {
			f.rows[i] = lines[i]
		} else {
			f.rows[i] = ""
		}
	}
}

// Lines returns a copy of the rows, always exactly Height long.
func (f *Frame) Lines() []string {
	out := make([]string, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *Frame) reset(width int) {
	f.width = width
	for i := range f.rows {
		f.rows[i] = ""
	}
}
