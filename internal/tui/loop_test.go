package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/serpent-os/tuirun/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// counter records every message it sees and draws how many it has applied.
type counter struct {
	lines   int
	updates []int
	applied atomic.Int64
	draws   int
}

func (c *counter) Lines() int { return c.lines }

func (c *counter) Draw(f *Frame) {
	c.draws++
	f.Set(0, fmt.Sprintf("updates=%d", len(c.updates)))
}

func (c *counter) Update(msg int) {
	c.updates = append(c.updates, msg)
	c.applied.Add(1)
}

type harness struct {
	tick      chan time.Time
	interrupt chan struct{}
	exitCode  atomic.Int64
	exited    atomic.Bool
}

func newHarness() *harness {
	return &harness{
		tick:      make(chan time.Time),
		interrupt: make(chan struct{}),
	}
}

func (h *harness) options(term Terminal) []Option {
	return []Option{
		WithTerminal(term),
		WithExit(func(code int) {
			h.exitCode.Store(int64(code))
			h.exited.Store(true)
		}),
		func(o *options) {
			o.tick = h.tick
			o.interrupt = h.interrupt
		},
	}
}

type outcome[T any] struct {
	value T
	err   error
}

func runAsync[T any](p Program[int], fn func(Handle[int]) (T, error), opts ...Option) <-chan outcome[T] {
	out := make(chan outcome[T], 1)
	go func() {
		v, err := Run(context.Background(), p, fn, opts...)
		out <- outcome[T]{value: v, err: err}
	}()
	return out
}

func wait[T any](t *testing.T, ch <-chan outcome[T]) outcome[T] {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for Run to return")
		return outcome[T]{}
	}
}

func TestRun_DrainsAllEventsAndRedrawsOncePerTick(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	prog := &counter{lines: 2}
	sent := make(chan struct{})
	release := make(chan struct{})

	done := runAsync(prog, func(hd Handle[int]) (int, error) {
		hd.Update(1)
		hd.Print("a")
		hd.Update(2)
		hd.Print("b\nc")
		hd.Update(3)
		close(sent)
		<-release
		return 42, nil
	}, h.options(term)...)

	<-sent
	h.tick <- time.Now()
	// The second tick is only received once the first render has completed.
	h.tick <- time.Now()
	close(release)

	res := wait(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, 42, res.value)

	assert.Equal(t, []int{1, 2, 3}, prog.updates)
	assert.Equal(t, []string{"a", "b", "c"}, term.Scrollback())

	frames := term.Frames()
	require.Len(t, frames, 3, "initial frame plus one per tick")
	assert.Equal(t, []string{"updates=0", ""}, frames[0])
	assert.Equal(t, []string{"updates=3", ""}, frames[1])
	assert.Equal(t, []string{"updates=3", ""}, frames[2])
}

func TestRun_RedrawsOnTicksWithoutEvents(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	prog := &counter{lines: 1}
	release := make(chan struct{})

	done := runAsync(prog, func(Handle[int]) (struct{}, error) {
		<-release
		return struct{}{}, nil
	}, h.options(term)...)

	for i := 0; i < 3; i++ {
		h.tick <- time.Now()
	}
	h.tick <- time.Now()
	close(release)

	res := wait(t, done)
	require.NoError(t, res.err)
	assert.Len(t, term.Frames(), 5)
	assert.Empty(t, prog.updates)
	assert.Empty(t, term.Scrollback())
}

func TestRun_ScrollbackSurvivesRedraws(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	prog := &counter{lines: 1}
	printed := make(chan struct{})
	release := make(chan struct{})

	done := runAsync(prog, func(hd Handle[int]) (int, error) {
		hd.Print("line one\r\nline two\nline three\n")
		close(printed)
		<-release
		return 0, nil
	}, h.options(term)...)

	<-printed
	h.tick <- time.Now()
	h.tick <- time.Now()
	h.tick <- time.Now()
	close(release)

	res := wait(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, []string{"line one", "line two", "line three"}, term.Scrollback())
}

func TestRun_ReturnsTaskValueAndRestoresTerminal(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	prog := &counter{lines: 3}

	done := runAsync(prog, func(Handle[int]) (string, error) {
		return "built", nil
	}, h.options(term)...)

	res := wait(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, "built", res.value)
	assert.True(t, term.CursorVisible())
	assert.Equal(t, 1, term.Clears())
	assert.Equal(t, []string{"", "", ""}, term.Viewport())
	assert.False(t, h.exited.Load())
}

func TestRun_PropagatesTaskError(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	taskErr := errors.New("compile failed")

	done := runAsync(&counter{lines: 1}, func(Handle[int]) (int, error) {
		return 7, taskErr
	}, h.options(term)...)

	res := wait(t, done)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, taskErr)
	assert.True(t, IsTaskError(res.err))
	assert.Zero(t, res.value)
	assert.True(t, term.CursorVisible())
	assert.Equal(t, 1, term.Clears())
}

func TestRun_PropagatesTaskPanic(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)

	done := runAsync(&counter{lines: 1}, func(Handle[int]) (int, error) {
		panic("boom")
	}, h.options(term)...)

	res := wait(t, done)
	require.Error(t, res.err)
	var panicErr *PanicError
	require.ErrorAs(t, res.err, &panicErr)
	assert.Equal(t, "boom", panicErr.Value)
	assert.NotEmpty(t, panicErr.Stack)
	assert.True(t, term.CursorVisible())
}

func TestRun_InterruptBeforeFirstTickExits(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	taskCtx := make(chan context.Context, 1)
	close(h.interrupt)

	done := runAsync(&counter{lines: 2}, func(hd Handle[int]) (int, error) {
		taskCtx <- hd.Context()
		<-hd.Context().Done()
		return 0, nil
	}, h.options(term)...)

	res := wait(t, done)
	assert.ErrorIs(t, res.err, ErrInterrupted)
	assert.True(t, h.exited.Load())
	assert.Equal(t, int64(0), h.exitCode.Load())
	assert.True(t, term.CursorVisible())
	assert.Equal(t, []string{"", ""}, term.Viewport())

	select {
	case ctx := <-taskCtx:
		assert.Error(t, ctx.Err(), "task context should be cancelled")
	case <-time.After(5 * time.Second):
		t.Fatal("task never started")
	}
}

func TestRun_InterruptWinsOverQueuedResult(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	close(h.interrupt)

	done := runAsync(&counter{lines: 1}, func(Handle[int]) (int, error) {
		return 1, nil
	}, h.options(term)...)

	res := wait(t, done)
	assert.ErrorIs(t, res.err, ErrInterrupted)
	assert.True(t, h.exited.Load())
	assert.Equal(t, 1, term.Clears())
}

func TestRun_InterruptMidRun(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	prog := &counter{lines: 1}

	done := runAsync(prog, func(hd Handle[int]) (int, error) {
		hd.Update(1)
		<-hd.Context().Done()
		return 0, nil
	}, h.options(term)...)

	h.tick <- time.Now()
	h.tick <- time.Now()
	close(h.interrupt)

	res := wait(t, done)
	assert.ErrorIs(t, res.err, ErrInterrupted)
	assert.True(t, h.exited.Load())
	assert.True(t, term.CursorVisible())
	assert.Equal(t, []string{""}, term.Viewport())
}

func TestRun_InterruptAsErrorDoesNotExit(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	close(h.interrupt)

	opts := append(h.options(term), WithInterruptAsError())
	done := runAsync(&counter{lines: 1}, func(hd Handle[int]) (int, error) {
		<-hd.Context().Done()
		return 0, hd.Context().Err()
	}, opts...)

	res := wait(t, done)
	assert.ErrorIs(t, res.err, ErrInterrupted)
	assert.False(t, h.exited.Load())
}

func TestRun_TerminalErrors(t *testing.T) {
	t.Parallel()

	ioErr := errors.New("terminal gone")

	tests := []struct {
		name    string
		op      terminal.Op
		wantMsg string
	}{
		{name: "init", op: terminal.OpInit, wantMsg: "failed to initialize viewport"},
		{name: "initial draw", op: terminal.OpDraw, wantMsg: "failed to draw viewport"},
		{name: "scrollback", op: terminal.OpInsertBefore, wantMsg: "failed to write scrollback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness()
			term := terminal.NewVirtual(80)
			term.FailOn(tt.op, ioErr)
			queued := make(chan struct{})

			done := runAsync(&counter{lines: 1}, func(hd Handle[int]) (int, error) {
				hd.Print("something")
				close(queued)
				<-hd.Context().Done()
				return 0, nil
			}, h.options(term)...)

			if tt.op == terminal.OpInsertBefore {
				<-queued
				h.tick <- time.Now()
			}

			res := wait(t, done)
			require.Error(t, res.err)
			assert.ErrorIs(t, res.err, ioErr)
			assert.Contains(t, res.err.Error(), tt.wantMsg)
			assert.False(t, IsTaskError(res.err))
			assert.True(t, term.CursorVisible())
		})
	}
}

func TestRun_TerminalCallOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	term := NewMockTerminal(ctrl)
	term.EXPECT().Width().Return(80).AnyTimes()

	gomock.InOrder(
		term.EXPECT().Init(2).Return(nil),
		term.EXPECT().Draw([]string{"updates=0", ""}).Return(nil),
		term.EXPECT().InsertBefore([]string{"hello"}).Return(nil),
		term.EXPECT().Draw([]string{"updates=1", ""}).Return(nil),
		term.EXPECT().ShowCursor().Return(nil),
		term.EXPECT().Clear().Return(nil),
	)

	h := newHarness()
	queued := make(chan struct{})
	release := make(chan struct{})

	done := runAsync(&counter{lines: 2}, func(hd Handle[int]) (int, error) {
		hd.Print("hello")
		hd.Update(9)
		close(queued)
		<-release
		return 0, nil
	}, h.options(term)...)

	<-queued
	h.tick <- time.Now()
	close(release)

	res := wait(t, done)
	require.NoError(t, res.err)
}

func TestRun_ConcurrentProducersAreLossless(t *testing.T) {
	t.Parallel()

	const producers = 8
	const perProducer = 500
	const total = producers * perProducer

	term := terminal.NewVirtual(80)
	prog := &counter{lines: 1}

	got, err := Run(context.Background(), prog, func(hd Handle[int]) (int, error) {
		var wg sync.WaitGroup
		for p := 0; p < producers; p++ {
			wg.Add(1)
			go func(clone Handle[int], p int) {
				defer wg.Done()
				for i := 0; i < perProducer; i++ {
					clone.Update(p*perProducer + i)
				}
			}(hd, p)
		}
		wg.Wait()

		ctx, cancel := context.WithTimeout(hd.Context(), 5*time.Second)
		defer cancel()
		for prog.applied.Load() < total {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
		return int(prog.applied.Load()), nil
	}, WithTerminal(term), WithTickInterval(time.Millisecond), WithExit(func(int) {}))

	require.NoError(t, err)
	assert.Equal(t, total, got)
	require.Len(t, prog.updates, total)

	seen := make(map[int]bool, total)
	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for _, msg := range prog.updates {
		require.False(t, seen[msg], "duplicate message %d", msg)
		seen[msg] = true

		p, seq := msg/perProducer, msg%perProducer
		require.Greater(t, seq, last[p], "producer %d delivered out of order", p)
		last[p] = seq
	}
}

func TestHandle_SendsAfterRunAreIgnored(t *testing.T) {
	t.Parallel()

	h := newHarness()
	term := terminal.NewVirtual(80)
	escaped := make(chan Handle[int], 1)

	done := runAsync(&counter{lines: 1}, func(hd Handle[int]) (int, error) {
		escaped <- hd
		return 0, nil
	}, h.options(term)...)

	res := wait(t, done)
	require.NoError(t, res.err)

	hd := <-escaped
	assert.NotPanics(t, func() {
		hd.Update(1)
		hd.Print("late")
		hd.Printf("late %d", 2)
	})
	assert.Zero(t, hd.events.len())
	assert.Empty(t, term.Scrollback())
}

func TestHandle_ZeroValueIsNoop(t *testing.T) {
	t.Parallel()

	var hd Handle[string]
	assert.NotPanics(t, func() {
		hd.Update("x")
		hd.Print("y")
	})
	assert.NoError(t, hd.Context().Err())
}

func TestNext_PrefersInterrupt(t *testing.T) {
	t.Parallel()

	tick := make(chan time.Time, 1)
	tick <- time.Now()
	done := make(chan result[int], 1)
	done <- result[int]{value: 1}
	interrupt := make(chan struct{})
	close(interrupt)

	for i := 0; i < 100; i++ {
		assert.IsType(t, termInput{}, next[int](tick, done, interrupt))
	}
}

func TestNext_ReturnsFinished(t *testing.T) {
	t.Parallel()

	done := make(chan result[string], 1)
	done <- result[string]{value: "ok"}

	in := next[string](make(chan time.Time), done, make(chan struct{}))
	finished, ok := in.(finishedInput[string])
	require.True(t, ok, "expected finishedInput, got %T", in)
	assert.Equal(t, "ok", finished.result.value)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "hello", want: []string{"hello"}},
		{name: "trailing newline", in: "hello\n", want: []string{"hello"}},
		{name: "multiple", in: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", in: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "only newline", in: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitLines(tt.in))
		})
	}
}
