package terminal

import "sync"

// Virtual is an in-memory backend that records every operation. It models
// the screen as scrollback rows plus the live viewport rows.
type Virtual struct {
	mu         sync.Mutex
	width      int
	lines      int
	viewport   []string
	scrollback []string
	frames     [][]string
	inits      int
	cursorOn   bool
	clears     int
	failures   map[Op]error
}

// Op names a backend operation for error injection.
type Op string

const (
	OpInit         Op = "init"
	OpDraw         Op = "draw"
	OpInsertBefore Op = "insert_before"
	OpShowCursor   Op = "show_cursor"
	OpClear        Op = "clear"
)

func NewVirtual(width int) *Virtual {
	return &Virtual{width: width, cursorOn: true, failures: map[Op]error{}}
}

// FailOn makes every later call of op return err.
func (v *Virtual) FailOn(op Op, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failures[op] = err
}

func (v *Virtual) Init(lines int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpInit]; err != nil {
		return err
	}
	v.inits++
	v.lines = lines
	v.viewport = make([]string, lines)
	v.cursorOn = false
	return nil
}

func (v *Virtual) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

func (v *Virtual) Draw(lines []string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpDraw]; err != nil {
		return err
	}
	frame := make([]string, v.lines)
	copy(frame, lines)
	v.viewport = frame
	v.frames = append(v.frames, frame)
	return nil
}

func (v *Virtual) InsertBefore(lines []string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpInsertBefore]; err != nil {
		return err
	}
	v.scrollback = append(v.scrollback, lines...)
	return nil
}

func (v *Virtual) ShowCursor() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpShowCursor]; err != nil {
		return err
	}
	v.cursorOn = true
	return nil
}

func (v *Virtual) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpClear]; err != nil {
		return err
	}
	v.clears++
	v.viewport = make([]string, v.lines)
	return nil
}

// Frames returns every frame drawn so far, oldest first.
func (v *Virtual) Frames() [][]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([][]string, len(v.frames))
	copy(out, v.frames)
	return out
}

func (v *Virtual) Scrollback() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.scrollback))
	copy(out, v.scrollback)
	return out
}

// Viewport returns the rows currently visible in the viewport.
func (v *Virtual) Viewport() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.viewport))
	copy(out, v.viewport)
	return out
}

func (v *Virtual) CursorVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursorOn
}

func (v *Virtual) Clears() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clears
}

func (v *Virtual) Inits() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inits
}
