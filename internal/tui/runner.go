package tui

import "runtime/debug"

type result[T any] struct {
	value T
	err   error
}

// spawn runs fn on its own goroutine so it can block without stalling the
// render cadence. Exactly one result is delivered on the returned channel,
// including when fn panics.
func spawn[M, T any](h Handle[M], fn func(Handle[M]) (T, error)) <-chan result[T] {
	done := make(chan result[T], 1)

	go func() {
		var res result[T]
		defer func() {
			if r := recover(); r != nil {
				res = result[T]{err: &PanicError{Value: r, Stack: debug.Stack()}}
			}
			done <- res
		}()

		value, err := fn(h)
		res = result[T]{value: value, err: err}
	}()

	return done
}
