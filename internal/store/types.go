package store

import (
	"time"

	"github.com/hedisam/ringqueue/internal/ringbuffer"
)

var (
	// ErrQueueEmpty is returned when reading or removing from an empty queue.
	ErrQueueEmpty = ringbuffer.ErrBufferEmpty
	// ErrQueueFull is returned when pushing to a queue that is at capacity.
	ErrQueueFull = ringbuffer.ErrBufferFull
)

// Item is a single queued value.
type Item struct {
	ID         string    `json:"id"`
	Value      string    `json:"value"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

type Stats struct {
	Size     int
	Capacity int
	Empty    bool
	Full     bool
}
