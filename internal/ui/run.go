package ui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/terminal"
	"github.com/serpent-os/tuirun/internal/tui"
)

// handleSender adapts a tui Handle to output.Sender.
type handleSender struct {
	h tui.Handle[tea.Msg]
}

func (s handleSender) Send(msg any) {
	s.h.Update(msg)
}

func (s handleSender) Print(text string) {
	s.h.Print(text)
}

// RunJob shows the job view while fn runs in the background. Events fn
// emits on its sink reach the view and the scrollback; the view is cleared
// once fn returns.
func RunJob[T any](ctx context.Context, version, job string, lines int, fn func(context.Context, output.Sink) (T, error), opts ...tui.Option) (T, error) {
	if lines < JobLines {
		lines = JobLines
	}
	model := NewJobModel(version, job)
	program := tui.FromModel(model, lines)

	return tui.Run(ctx, program, func(h tui.Handle[tea.Msg]) (T, error) {
		stop := animate(h, model)
		defer stop()
		return fn(h.Context(), output.NewTUISink(handleSender{h: h}))
	}, opts...)
}

// animate feeds spinner frames to the view until the returned func is called.
func animate(h tui.Handle[tea.Msg], model JobModel) func() {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(model.SpinnerInterval())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-h.Context().Done():
				return
			case now := <-ticker.C:
				h.Update(model.SpinnerTick(now))
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

func IsInteractive() bool {
	return terminal.IsTerminal(os.Stdout)
}
