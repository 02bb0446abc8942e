package ringbuffer

import "errors"

var (
	// ErrOutOfRange is returned when dereferencing or advancing an iterator at the end position.
	ErrOutOfRange = errors.New("iterator out of range")
	// ErrIteratorInvalidated is returned when an iterator is used after its buffer was modified.
	ErrIteratorInvalidated = errors.New("iterator invalidated by buffer mutation")
)

// Iterator is a forward cursor over the logical positions of a RingBuffer.
// It holds no data of its own: any PushBack, PopFront, DropBack or Reset on the
// parent invalidates it, and subsequent Value/Next calls return ErrIteratorInvalidated.
type Iterator[T any] struct {
	parent *RingBuffer[T]
	offset int
	gen    uint64
}

// Offset returns the logical position of the iterator, 0 being the oldest element.
func (it Iterator[T]) Offset() int {
	return it.offset
}

// Value returns the element the iterator points to.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.offset >= it.parent.count {
		return zero, ErrOutOfRange
	}
	return it.parent.buf[it.parent.physical(it.offset)], nil
}

// Next advances the iterator by one position. Advancing the end iterator fails with ErrOutOfRange
// and leaves the position unchanged.
func (it *Iterator[T]) Next() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.offset >= it.parent.count {
		return ErrOutOfRange
	}
	it.offset++
	return nil
}

// Equal reports whether both iterators belong to the same buffer and point to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.parent == other.parent && it.offset == other.offset
}

func (it Iterator[T]) check() error {
	if it.parent == nil {
		return ErrOutOfRange
	}
	if it.gen != it.parent.gen {
		return ErrIteratorInvalidated
	}
	return nil
}
