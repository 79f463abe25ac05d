//go:build unix

package tui

import (
	"os"
	"syscall"
	"testing"

	"github.com/serpent-os/tuirun/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signalOnInit raises sig against the test process as soon as the viewport
// has been reserved.
type signalOnInit struct {
	*terminal.Virtual
	sig syscall.Signal
}

func (s signalOnInit) Init(lines int) error {
	if err := s.Virtual.Init(lines); err != nil {
		return err
	}
	return syscall.Kill(os.Getpid(), s.sig)
}

func TestRun_SignalDuringInitRestoresTerminal(t *testing.T) {
	term := terminal.NewVirtual(80)

	done := runAsync(&counter{lines: 2}, func(hd Handle[int]) (int, error) {
		<-hd.Context().Done()
		return 0, nil
	},
		WithTerminal(signalOnInit{Virtual: term, sig: syscall.SIGUSR1}),
		WithSignals(syscall.SIGUSR1),
		WithInterruptAsError(),
	)

	res := wait(t, done)
	require.ErrorIs(t, res.err, ErrInterrupted)
	assert.Equal(t, 1, term.Inits())
	assert.True(t, term.CursorVisible())
	assert.Equal(t, []string{"", ""}, term.Viewport())
}
