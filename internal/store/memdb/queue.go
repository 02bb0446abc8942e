package memdb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ringqueue/internal/ringbuffer"
	"github.com/hedisam/ringqueue/internal/store"
)

// QueueStore is a bounded FIFO of items backed by a single ring buffer.
// The ring buffer itself is not thread safe; every access goes through mu.
type QueueStore struct {
	rb   *ringbuffer.RingBuffer[*store.Item]
	now  func() time.Time
	size prometheus.Gauge
	mu   sync.RWMutex
}

func NewQueueStore(opts ...Option) *QueueStore {
	cfg := &config{
		name:     DefaultName,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	queueCapacity.WithLabelValues(cfg.name).Set(float64(cfg.capacity))
	size := queueSize.WithLabelValues(cfg.name)
	size.Set(0)
	return &QueueStore{
		rb:   ringbuffer.New[*store.Item](cfg.capacity),
		now:  cfg.now,
		size: size,
	}
}

// Push appends a new item holding value to the back of the queue.
// It returns store.ErrQueueFull, without modifying the queue, if there is no room left.
func (s *QueueStore) Push(_ context.Context, value string) (*store.Item, error) {
	item := &store.Item{
		ID:         uuid.NewString(),
		Value:      value,
		EnqueuedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.rb.PushBack(item)
	if err != nil {
		if errors.Is(err, ringbuffer.ErrBufferFull) {
			rejectedPushes.Inc()
		}
		return nil, fmt.Errorf("push item: %w", err)
	}

	pushedItems.Inc()
	s.size.Set(float64(s.rb.Size()))
	return item, nil
}

// Pop removes and returns the oldest item.
func (s *QueueStore) Pop(_ context.Context) (*store.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.rb.PopFront()
	if err != nil {
		return nil, emptyErr("pop front", err)
	}

	poppedItems.Inc()
	s.size.Set(float64(s.rb.Size()))
	return item, nil
}

// Front returns the oldest item without removing it.
func (s *QueueStore) Front(_ context.Context) (*store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.rb.Front()
	if err != nil {
		return nil, emptyErr("get front", err)
	}
	return item, nil
}

// Back returns the newest item without removing it.
func (s *QueueStore) Back(_ context.Context) (*store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.rb.Back()
	if err != nil {
		return nil, emptyErr("get back", err)
	}
	return item, nil
}

// List returns the queued items from oldest to newest.
func (s *QueueStore) List(_ context.Context) ([]*store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*store.Item, 0, s.rb.Size())
	end := s.rb.End()
	for it := s.rb.Begin(); !it.Equal(end); {
		item, err := it.Value()
		if err != nil {
			return nil, fmt.Errorf("read item at offset %d: %w", it.Offset(), err)
		}
		items = append(items, item)
		err = it.Next()
		if err != nil {
			return nil, fmt.Errorf("advance iterator at offset %d: %w", it.Offset(), err)
		}
	}

	return items, nil
}

// Stats returns the current size and capacity of the queue.
func (s *QueueStore) Stats(_ context.Context) (*store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &store.Stats{
		Size:     s.rb.Size(),
		Capacity: s.rb.Cap(),
		Empty:    s.rb.Empty(),
		Full:     s.rb.Full(),
	}, nil
}

// Raw returns every physical slot of the underlying ring buffer, nil for unused ones.
// Only meant for diagnostics: slot order is not queue order.
func (s *QueueStore) Raw(_ context.Context) ([]*store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Dump(), nil
}

func emptyErr(op string, err error) error {
	if errors.Is(err, ringbuffer.ErrBufferEmpty) {
		emptyAccesses.Inc()
	}
	return fmt.Errorf("%s: %w", op, err)
}
