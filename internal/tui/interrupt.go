package tui

import (
	"os"
	"os/signal"
)

// listenInterrupt returns a channel that is closed the first time one of
// signals arrives. The returned stop func releases the signal handler.
func listenInterrupt(signals []os.Signal) (<-chan struct{}, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)

	fired := make(chan struct{})
	stopCh := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			close(fired)
		case <-stopCh:
		}
	}()

	return fired, func() {
		signal.Stop(sigCh)
		close(stopCh)
	}
}
