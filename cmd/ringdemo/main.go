// ringdemo walks a small ring buffer through a fill, overflow, pop and wrap, printing the
// raw storage and the queue along the way.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/ringqueue/internal/ringbuffer"
)

const demoCapacity = 6

func main() {
	logger := logrus.New()
	err := run(os.Stdout)
	if err != nil {
		logger.WithError(err).Fatal("Demo failed")
	}
}

func run(w io.Writer) error {
	rb := ringbuffer.New[int](demoCapacity)
	dump(w, rb)

	for i := range demoCapacity + 1 {
		err := rb.PushBack(i + 1)
		if errors.Is(err, ringbuffer.ErrBufferFull) {
			fmt.Fprintf(w, "%s push of %d rejected: %v\n", humanize.Ordinal(i+1), i+1, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("push %d: %w", i+1, err)
		}
	}
	dump(w, rb)

	_, err := rb.PopFront()
	if err != nil {
		return fmt.Errorf("pop front: %w", err)
	}
	err = rb.PushBack(demoCapacity + 2)
	if err != nil {
		return fmt.Errorf("push after pop: %w", err)
	}

	fmt.Fprintln(w, "Queue via size:")
	it := rb.Begin()
	for range rb.Size() {
		v, err := it.Value()
		if err != nil {
			return fmt.Errorf("read offset %d: %w", it.Offset(), err)
		}
		fmt.Fprintf(w, "Value: %d\n", v)
		if err := it.Next(); err != nil {
			return fmt.Errorf("advance offset %d: %w", it.Offset(), err)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Queue via iterators:")
	for v := range rb.All() {
		fmt.Fprintf(w, "Value: %d\n", v)
	}
	fmt.Fprintln(w)

	dump(w, rb)
	return nil
}

func dump(w io.Writer, rb *ringbuffer.RingBuffer[int]) {
	fmt.Fprintf(w, "Raw queue (%d of %d slots in use)...\n", rb.Size(), rb.Cap())
	for i, v := range rb.Dump() {
		fmt.Fprintf(w, "Slot %d: %d\n", i, v)
	}
	fmt.Fprintln(w)
}
