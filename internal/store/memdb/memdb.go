package memdb

import (
	"time"
)

const (
	// DefaultCapacity is the queue capacity used when none is provided.
	DefaultCapacity = 100
	// DefaultName labels the metrics of a queue created without WithName.
	DefaultName = "default"
)

type config struct {
	name     string
	capacity uint
	now      func() time.Time
}

type Option func(*config)

// WithCapacity allows us to specify a custom capacity for the queue.
// Zero is ignored.
func WithCapacity(capacity uint) Option {
	return func(c *config) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithName sets the "queue" label on the size and capacity gauges.
// Stores sharing a name share those gauges.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithClock overrides the clock used to stamp enqueued items.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
