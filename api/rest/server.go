package rest

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ringqueue/internal/store"
)

const (
	// MaxValueLength is the maximum number of bytes accepted for a pushed value.
	MaxValueLength = 4096
)

type QueueStore interface {
	Push(ctx context.Context, value string) (*store.Item, error)
	Pop(ctx context.Context) (*store.Item, error)
	Front(ctx context.Context) (*store.Item, error)
	Back(ctx context.Context) (*store.Item, error)
	List(ctx context.Context) ([]*store.Item, error)
	Stats(ctx context.Context) (*store.Stats, error)
	Raw(ctx context.Context) ([]*store.Item, error)
}

type Server struct {
	logger     *logrus.Logger
	queueStore QueueStore
}

func NewServer(logger *logrus.Logger, queueStore QueueStore) *Server {
	return &Server{
		logger:     logger,
		queueStore: queueStore,
	}
}

// Register adds all queue routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodPost, "/api/v1/queue/items", s.Push)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/queue/items", s.List)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/queue/front", s.Pop)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/queue/front", s.Front)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/queue/back", s.Back)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/queue/stats", s.Stats)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/queue/debug/raw", s.Raw)
}

func (s *Server) Push(ctx context.Context, req *PushRequest) (*PushResponse, error) {
	logger := s.logger.WithContext(ctx)

	value := strings.TrimSpace(req.Value)
	if value == "" {
		logger.Warn("Value is required to push")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'value'")
	}
	if len(value) > MaxValueLength || !utf8.ValidString(value) {
		logger.WithField("length", len(value)).Warn("Invalid value provided to push")
		return nil, NewErrf(http.StatusBadRequest, "Invalid value. Expected valid UTF-8 of at most %d bytes", MaxValueLength)
	}

	item, err := s.queueStore.Push(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrQueueFull) {
			logger.Warn("Push rejected, queue is full")
			return nil, NewErrf(http.StatusConflict, "Queue is full, retry after items are popped")
		}
		logger.WithError(err).Error("Failed to push item to store")
		return nil, NewErrf(http.StatusInternalServerError, "could not push item to store")
	}

	logger.WithField("id", item.ID).Debug("Item pushed")
	return &PushResponse{
		Item: convertStoredToAPIItem(item),
	}, nil
}

func (s *Server) Pop(ctx context.Context, _ *PopRequest) (*PopResponse, error) {
	item, err := s.queueStore.Pop(ctx)
	if err != nil {
		return nil, s.emptyOrInternal(ctx, err, "pop")
	}

	return &PopResponse{
		Item: convertStoredToAPIItem(item),
	}, nil
}

func (s *Server) Front(ctx context.Context, _ *PeekRequest) (*PeekResponse, error) {
	item, err := s.queueStore.Front(ctx)
	if err != nil {
		return nil, s.emptyOrInternal(ctx, err, "get front")
	}

	return &PeekResponse{
		Item: convertStoredToAPIItem(item),
	}, nil
}

func (s *Server) Back(ctx context.Context, _ *PeekRequest) (*PeekResponse, error) {
	item, err := s.queueStore.Back(ctx)
	if err != nil {
		return nil, s.emptyOrInternal(ctx, err, "get back")
	}

	return &PeekResponse{
		Item: convertStoredToAPIItem(item),
	}, nil
}

func (s *Server) List(ctx context.Context, _ *ListRequest) (*ListResponse, error) {
	storedItems, err := s.queueStore.List(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to list items from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not list items from store")
	}

	items := make([]*Item, 0, len(storedItems))
	for storedItem := range slices.Values(storedItems) {
		items = append(items, convertStoredToAPIItem(storedItem))
	}

	return &ListResponse{
		Items: items,
		Size:  len(items),
	}, nil
}

func (s *Server) Stats(ctx context.Context, _ *StatsRequest) (*StatsResponse, error) {
	stats, err := s.queueStore.Stats(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to get queue stats from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not get queue stats")
	}

	return &StatsResponse{
		Size:     stats.Size,
		Capacity: stats.Capacity,
		Empty:    stats.Empty,
		Full:     stats.Full,
	}, nil
}

func (s *Server) Raw(ctx context.Context, _ *RawRequest) (*RawResponse, error) {
	slots, err := s.queueStore.Raw(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to dump raw queue storage")
		return nil, NewErrf(http.StatusInternalServerError, "could not dump raw queue storage")
	}

	resp := &RawResponse{
		Slots: make([]*Item, 0, len(slots)),
	}
	for slot := range slices.Values(slots) {
		resp.Slots = append(resp.Slots, convertStoredToAPIItem(slot))
	}
	return resp, nil
}

func (s *Server) emptyOrInternal(ctx context.Context, err error, op string) error {
	logger := s.logger.WithContext(ctx).WithField("op", op)
	if errors.Is(err, store.ErrQueueEmpty) {
		logger.Debug("Queue is empty")
		return NewErrf(http.StatusNotFound, "Queue is empty")
	}
	logger.WithError(err).Error("Failed to access queue store")
	return NewErrf(http.StatusInternalServerError, "could not %s item", op)
}

// convertStoredToAPIItem returns nil for a nil item so raw dumps keep unused slots as null.
func convertStoredToAPIItem(item *store.Item) *Item {
	if item == nil {
		return nil
	}
	return &Item{
		ID:         item.ID,
		Value:      item.Value,
		EnqueuedAt: item.EnqueuedAt.Format(time.RFC3339Nano),
	}
}
