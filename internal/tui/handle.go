package tui

import (
	"context"
	"fmt"
)

// Handle lets a background task feed a running loop. It is a small value:
// copies share the same channel and may be used from any number of
// goroutines. Sends never block and are dropped silently once the loop has
// stopped consuming.
type Handle[M any] struct {
	events *queue[Event[M]]
	ctx    context.Context
}

// Update enqueues msg for Program.Update.
func (h Handle[M]) Update(msg M) {
	h.send(MessageEvent[M]{Message: msg})
}

// Print enqueues text to be written above the viewport. Each line of text
// becomes one scrollback line.
func (h Handle[M]) Print(text string) {
	h.send(PrintEvent{Text: text})
}

func (h Handle[M]) Printf(format string, args ...any) {
	h.Print(fmt.Sprintf(format, args...))
}

// Context is cancelled when the loop returns. Tasks that can stop early
// should watch it; an interrupt that exits the process does not wait for
// them.
func (h Handle[M]) Context() context.Context {
	if h.ctx == nil {
		return context.Background()
	}
	return h.ctx
}

func (h Handle[M]) send(ev Event[M]) {
	if h.events == nil {
		return
	}
	// A rejected push means the loop is gone; that is not the caller's problem.
	_ = h.events.push(ev)
}
