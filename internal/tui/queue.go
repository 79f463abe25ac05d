package tui

import "sync"

// queue is an unbounded multi-producer single-consumer FIFO. Pushes never
// block and never fail; once the consumer closes the queue they are dropped.
// There is no backpressure: a producer that outpaces the render cadence grows
// the backlog until the next drain.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{}
}

// push appends item and reports whether it was accepted.
func (q *queue[T]) push(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, item)
	return true
}

// drain takes everything currently queued without waiting for more.
func (q *queue[T]) drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// len reports the current backlog.
func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// close drops the backlog and turns further pushes into no-ops.
func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.items = nil
}
