package ringbuffer

import (
	"errors"
	"iter"
)

var (
	// ErrBufferEmpty is returned when reading or removing from an empty buffer.
	ErrBufferEmpty = errors.New("ring buffer is empty")
	// ErrBufferFull is returned by PushBack when the buffer is at capacity. Nothing is overwritten.
	ErrBufferFull = errors.New("ring buffer is full")
)

// RingBuffer is a fixed capacity FIFO over a preallocated slice.
// It is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf   []T
	begin int
	count int
	// gen is bumped on every mutation so that stale iterators can be detected.
	gen uint64
}

// New creates a RingBuffer with the given capacity.
// A default capacity of 1 is used if the given value is zero.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

// physical maps a logical offset (0 = oldest) to an index in buf.
func (r *RingBuffer[T]) physical(offset int) int {
	return (r.begin + offset) % len(r.buf)
}

// Size returns the number of elements currently in the buffer.
func (r *RingBuffer[T]) Size() int {
	return r.count
}

// Cap returns the fixed capacity of the buffer.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// Empty returns true if the buffer holds no elements.
func (r *RingBuffer[T]) Empty() bool {
	return r.count == 0
}

// Full returns true if a PushBack would be rejected.
func (r *RingBuffer[T]) Full() bool {
	return r.count == len(r.buf)
}

// PushBack appends item as the newest element. It returns ErrBufferFull if there is no room left.
func (r *RingBuffer[T]) PushBack(item T) error {
	if r.Full() {
		return ErrBufferFull
	}

	r.buf[r.physical(r.count)] = item
	r.count++
	r.gen++
	return nil
}

// PopFront removes and returns the oldest element.
func (r *RingBuffer[T]) PopFront() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrBufferEmpty
	}

	item := r.buf[r.begin]
	// don't keep references to removed items around
	r.buf[r.begin] = zero
	r.begin = r.physical(1)
	r.count--
	r.gen++
	return item, nil
}

// DropBack discards the newest element without returning it.
func (r *RingBuffer[T]) DropBack() error {
	if r.count == 0 {
		return ErrBufferEmpty
	}

	var zero T
	r.buf[r.physical(r.count-1)] = zero
	r.count--
	r.gen++
	return nil
}

// Front returns the oldest element without removing it.
func (r *RingBuffer[T]) Front() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrBufferEmpty
	}
	return r.buf[r.physical(0)], nil
}

// Back returns the newest element without removing it.
func (r *RingBuffer[T]) Back() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrBufferEmpty
	}
	return r.buf[r.physical(r.count-1)], nil
}

// Reset empties the buffer and clears every slot.
func (r *RingBuffer[T]) Reset() {
	clear(r.buf)
	r.begin = 0
	r.count = 0
	r.gen++
}

// Begin returns an iterator positioned at the oldest element.
func (r *RingBuffer[T]) Begin() Iterator[T] {
	return Iterator[T]{parent: r, offset: 0, gen: r.gen}
}

// End returns the sentinel iterator, one past the newest element. It must not be dereferenced.
func (r *RingBuffer[T]) End() Iterator[T] {
	return Iterator[T]{parent: r, offset: r.count, gen: r.gen}
}

// All yields the elements from oldest to newest.
// The buffer must not be mutated while ranging over it. A mutation silently ends the
// iteration early, so callers that need to detect it should walk Begin to End instead,
// where Value and Next return ErrIteratorInvalidated.
func (r *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.End()
		for it := r.Begin(); !it.Equal(end); {
			v, err := it.Value()
			if err != nil || !yield(v) {
				return
			}
			if it.Next() != nil {
				return
			}
		}
	}
}

// Values returns a copy of the elements from oldest to newest.
func (r *RingBuffer[T]) Values() []T {
	out := make([]T, 0, r.count)
	for i := range r.count {
		out = append(out, r.buf[r.physical(i)])
	}
	return out
}

// Dump returns a copy of every physical slot, including the ones outside the logical window.
// Meant for debugging only; the result says nothing about FIFO order.
func (r *RingBuffer[T]) Dump() []T {
	out := make([]T, len(r.buf))
	copy(out, r.buf)
	return out
}
