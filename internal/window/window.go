// Package window holds back the newest items of a stream until enough newer items confirm them.
package window

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"
	"github.com/hedisam/ringqueue/internal/ringbuffer"
)

// LinkFunc reports whether next is a valid successor of prev.
type LinkFunc[T any] func(prev, next T) bool

// Confirm emits every item received on in once depth newer items have followed it.
// When linked is not nil, an incoming item that does not link to the newest held item
// causes held items to be dropped, newest first, until one links or the window is empty.
// Items still held when in is closed are never emitted.
// A depth of zero is treated as one.
func Confirm[T any](ctx context.Context, logger *logrus.Logger, in <-chan T, depth uint, linked LinkFunc[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		rb := ringbuffer.New[T](depth)
		for item := range chans.ReceiveOrDoneSeq(ctx, in) {
			for linked != nil && !rb.Empty() {
				tail, _ := rb.Back()
				if linked(tail, item) {
					break
				}
				logger.WithField("held", rb.Size()).Warn("Incoming item does not link to the newest held item, dropping it")
				_ = rb.DropBack()
				droppedItems.Inc()
			}

			if rb.Full() {
				// the oldest item is now depth items deep
				oldest, _ := rb.PopFront()
				if !chans.SendOrDone(ctx, out, oldest) {
					return
				}
				confirmedItems.Inc()
			}

			_ = rb.PushBack(item)
		}

		logger.WithField("unconfirmed", rb.Size()).Debug("Input closed, discarding unconfirmed items")
	}()

	return out
}
