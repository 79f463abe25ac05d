package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := newQueue[int]()
	for i := 0; i < 5; i++ {
		assert.True(t, q.push(i))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, q.drain())
	assert.Empty(t, q.drain())
}

// A burst far larger than any render interval would drain is held in full.
func TestQueue_Unbounded(t *testing.T) {
	t.Parallel()

	const burst = 100_000
	q := newQueue[int]()
	for i := 0; i < burst; i++ {
		q.push(i)
	}

	assert.Equal(t, burst, q.len())
	items := q.drain()
	assert.Len(t, items, burst)
	assert.Equal(t, burst-1, items[burst-1])
}

func TestQueue_PushAfterCloseIsDropped(t *testing.T) {
	t.Parallel()

	q := newQueue[string]()
	q.push("before")
	q.close()

	assert.False(t, q.push("after"))
	assert.Zero(t, q.len())
	assert.Empty(t, q.drain())
}
