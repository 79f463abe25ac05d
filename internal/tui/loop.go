package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/serpent-os/tuirun/internal/tui"

// input is what wakes the loop: a tick, the task result, or an interrupt.
type input interface {
	isInput()
}

type renderInput struct{}

type finishedInput[T any] struct {
	result result[T]
}

type termInput struct{}

func (renderInput) isInput()      {}
func (finishedInput[T]) isInput() {}
func (termInput) isInput()        {}

// Run drives p in an inline viewport while fn runs in the background.
//
// The loop redraws at a fixed rate, applying whatever messages fn queued
// through its Handle since the previous tick and writing queued prints above
// the viewport. When fn returns, the terminal is restored and its value is
// returned; a failure of fn is returned as a *TaskError. On interrupt the
// terminal is restored and the process exits with status 0, unless
// WithInterruptAsError is set.
func Run[M, T any](ctx context.Context, p Program[M], fn func(Handle[M]) (T, error), opts ...Option) (T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.terminal == nil {
		o.terminal = defaultTerminal()
	}

	var zero T

	ctx, span := otel.Tracer(tracerName).Start(ctx, "tui.Run")
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := &loop[M]{
		program: p,
		term:    o.terminal,
		events:  newQueue[Event[M]](),
		frame:   NewFrame(0, p.Lines()),
		log:     o.logger,
	}
	defer l.events.close()
	defer func() {
		if r := recover(); r != nil {
			l.abort()
			panic(r)
		}
	}()

	span.SetAttributes(attribute.Int("tui.lines", p.Lines()), attribute.String("tui.tick", o.interval.String()))

	// Register before touching the terminal so a signal during start is
	// still turned into a clean restore.
	interrupt := o.interrupt
	if interrupt == nil {
		var stop func()
		interrupt, stop = listenInterrupt(o.signals)
		defer stop()
	}

	if err := l.start(); err != nil {
		l.abort()
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}

	tick := o.tick
	if tick == nil {
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	done := spawn(Handle[M]{events: l.events, ctx: ctx}, fn)

	for {
		switch in := next(tick, done, interrupt).(type) {
		case renderInput:
			if err := l.render(); err != nil {
				l.abort()
				span.SetStatus(codes.Error, err.Error())
				return zero, err
			}
		case finishedInput[T]:
			l.log.Debug("task finished", "ticks", l.ticks, "error", in.result.err)
			if in.result.err != nil {
				l.abort()
				err := &TaskError{Err: in.result.err}
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return zero, err
			}
			if err := l.restore(); err != nil {
				span.SetStatus(codes.Error, err.Error())
				return zero, err
			}
			return in.result.value, nil
		case termInput:
			l.log.Debug("interrupt received", "ticks", l.ticks)
			if err := l.restore(); err != nil {
				l.log.Error("failed to restore terminal", "error", err)
			}
			span.AddEvent("interrupt")
			cancel()
			if !o.interruptAsError {
				o.exit(0)
			}
			return zero, ErrInterrupted
		}
	}
}

// next blocks until one source is ready. The interrupt is checked before and
// after the blocking select so that it is never lost to a ready tick or to a
// result that raced it.
func next[T any](tick <-chan time.Time, done <-chan result[T], interrupt <-chan struct{}) input {
	select {
	case <-interrupt:
		return termInput{}
	default:
	}

	select {
	case <-interrupt:
		return termInput{}
	case res := <-done:
		select {
		case <-interrupt:
			return termInput{}
		default:
		}
		return finishedInput[T]{result: res}
	case <-tick:
		return renderInput{}
	}
}

type loop[M any] struct {
	program  Program[M]
	term     Terminal
	events   *queue[Event[M]]
	frame    *Frame
	log      *slog.Logger
	ticks    int
	restored bool
}

func (l *loop[M]) start() error {
	lines := l.program.Lines()
	l.log.Debug("starting loop", "lines", lines)
	if err := l.term.Init(lines); err != nil {
		return fmt.Errorf("failed to initialize viewport: %w", err)
	}
	return l.draw()
}

// render drains everything queued so far, then redraws exactly once.
func (l *loop[M]) render() error {
	l.ticks++

	var printed []string
	for _, ev := range l.events.drain() {
		switch ev := ev.(type) {
		case MessageEvent[M]:
			l.program.Update(ev.Message)
		case PrintEvent:
			printed = append(printed, splitLines(ev.Text)...)
		}
	}

	if len(printed) > 0 {
		if err := l.term.InsertBefore(printed); err != nil {
			return fmt.Errorf("failed to write scrollback: %w", err)
		}
	}
	return l.draw()
}

func (l *loop[M]) draw() error {
	l.frame.reset(l.term.Width())
	l.program.Draw(l.frame)
	if err := l.term.Draw(l.frame.Lines()); err != nil {
		return fmt.Errorf("failed to draw viewport: %w", err)
	}
	return nil
}

// restore shows the cursor and clears the viewport. It runs at most once.
func (l *loop[M]) restore() error {
	if l.restored {
		return nil
	}
	l.restored = true

	if err := l.term.ShowCursor(); err != nil {
		return fmt.Errorf("failed to show cursor: %w", err)
	}
	if err := l.term.Clear(); err != nil {
		return fmt.Errorf("failed to clear viewport: %w", err)
	}
	return nil
}

// abort is the best-effort restore used on failure paths.
func (l *loop[M]) abort() {
	if err := l.restore(); err != nil {
		l.log.Warn("failed to restore terminal", "error", err)
	}
}

// splitLines splits text on line breaks. A trailing newline does not produce
// an extra empty line and CRLF endings are accepted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
