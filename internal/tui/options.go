package tui

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/serpent-os/tuirun/internal/terminal"
)

// DefaultFPS is the redraw rate used unless WithFPS or WithTickInterval is
// given.
const DefaultFPS = 60

//go:generate mockgen -source=options.go -destination=mock_terminal_test.go -package=tui

// Terminal is the narrow set of operations the loop needs from the screen.
// The viewport is an inline region of a fixed number of rows at the bottom
// of the output; the cursor rests at its top between calls.
type Terminal interface {
	// Init reserves an inline viewport of the given height.
	Init(lines int) error
	// Width is the current number of columns.
	Width() int
	// Draw repaints the viewport with exactly the given rows.
	Draw(lines []string) error
	// InsertBefore writes lines above the viewport so they persist in the
	// scrollback after the next Draw.
	InsertBefore(lines []string) error
	ShowCursor() error
	// Clear blanks the viewport, leaving the cursor at its top.
	Clear() error
}

type Option func(*options)

type options struct {
	terminal         Terminal
	interval         time.Duration
	logger           *slog.Logger
	signals          []os.Signal
	exit             func(code int)
	interruptAsError bool

	// Test hooks: replace the OS signal listener and the ticker.
	interrupt <-chan struct{}
	tick      <-chan time.Time
}

func defaultOptions() options {
	return options{
		interval: time.Second / DefaultFPS,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		signals:  []os.Signal{os.Interrupt},
		exit:     os.Exit,
	}
}

// WithTerminal sets the backend. By default Run uses an inline viewport on
// stdout when it is a terminal and plain line output otherwise.
func WithTerminal(t Terminal) Option {
	return func(o *options) {
		o.terminal = t
	}
}

// WithFPS sets the redraw rate. Non-positive values are ignored.
func WithFPS(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.interval = time.Second / time.Duration(fps)
		}
	}
}

func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSignals replaces the set of signals treated as an interrupt.
func WithSignals(signals ...os.Signal) Option {
	return func(o *options) {
		if len(signals) > 0 {
			o.signals = signals
		}
	}
}

// WithExit replaces os.Exit on the interrupt path.
func WithExit(exit func(code int)) Option {
	return func(o *options) {
		if exit != nil {
			o.exit = exit
		}
	}
}

// WithInterruptAsError makes an interrupt return ErrInterrupted from Run
// (after restoring the terminal and cancelling the handle context) instead
// of exiting the process.
func WithInterruptAsError() Option {
	return func(o *options) {
		o.interruptAsError = true
	}
}

func defaultTerminal() Terminal {
	if terminal.IsTerminal(os.Stdout) {
		return terminal.NewInline(os.Stdout)
	}
	return terminal.NewPlain(os.Stdout)
}
