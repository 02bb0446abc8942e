// Package client talks to the ringqueue http api.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/ringqueue/api/rest"
	"github.com/hedisam/pipeline/chans"
)

var (
	// ErrQueueFull is returned when the queue stayed full for the whole retry period.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueEmpty is returned when popping from an empty queue.
	ErrQueueEmpty = errors.New("queue is empty")
)

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	baseAddr   string
	newBackoff func() backoff.BackOff
}

type Option func(*Client)

// WithBackoff overrides the retry policy. Mostly useful in tests.
func WithBackoff(newBackoff func() backoff.BackOff) Option {
	return func(c *Client) {
		if newBackoff != nil {
			c.newBackoff = newBackoff
		}
	}
}

func New(logger *logrus.Logger, httpClient *http.Client, baseAddr string, opts ...Option) *Client {
	c := &Client{
		logger:     logger,
		httpClient: httpClient,
		baseAddr:   strings.TrimSuffix(baseAddr, "/"),
		newBackoff: func() backoff.BackOff { return newExponentialBackoffConfig() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryPolicy reports whether a failed request may be sent again.
type retryPolicy func(err error) bool

// retryReads retries transport errors and 5xx. Only safe for requests that don't change the queue.
func retryReads(err error) bool {
	var apiErr *restapi.Err
	return !errors.As(err, &apiErr) || apiErr.StatusCode >= http.StatusInternalServerError
}

// retryFull only retries a 409, the one answer that guarantees the push was not applied.
func retryFull(err error) bool {
	var apiErr *restapi.Err
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// noRetry is used for pops: a lost response may hide a pop that was applied.
func noRetry(error) bool {
	return false
}

// Push pushes value to the back of the queue. A full queue is retried until the backoff gives up.
// Any other failure is returned as is, since the push may have been applied.
func (c *Client) Push(ctx context.Context, value string) (*restapi.Item, error) {
	var resp restapi.PushResponse
	err := c.doWithRetry(ctx, "push", retryFull, http.MethodPost, "/api/v1/queue/items", &restapi.PushRequest{Value: value}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// Pop removes and returns the front of the queue. It is never retried: if the response is lost
// the item may already be gone, and a second pop would silently skip it.
func (c *Client) Pop(ctx context.Context) (*restapi.Item, error) {
	var resp restapi.PopResponse
	err := c.doWithRetry(ctx, "pop", noRetry, http.MethodDelete, "/api/v1/queue/front", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Item, nil
}

func (c *Client) Stats(ctx context.Context) (*restapi.StatsResponse, error) {
	var resp restapi.StatsResponse
	err := c.doWithRetry(ctx, "stats", retryReads, http.MethodGet, "/api/v1/queue/stats", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Feed pushes every value received on in until in is closed or ctx is done.
// Values that could not be pushed are logged and skipped.
func (c *Client) Feed(ctx context.Context, in <-chan string) {
	for value := range chans.ReceiveOrDoneSeq(ctx, in) {
		item, err := c.Push(ctx, value)
		if err != nil {
			c.logger.WithField("value", value).WithError(err).Error("Failed to feed value")
			failedFeeds.Inc()
			continue
		}
		fedValues.Inc()
		c.logger.WithField("id", item.ID).Debug("Fed value")
	}
}

func (c *Client) doWithRetry(ctx context.Context, op string, retryable retryPolicy, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request body: %w", err)
		}
	}

	attempt := 0
	bk := backoff.WithContext(c.newBackoff(), ctx)
	err := backoff.Retry(func() error {
		if attempt > 0 {
			retriedRequests.WithLabelValues(op).Inc()
		}
		attempt++

		err := c.do(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		c.logger.WithFields(logrus.Fields{
			"op":      op,
			"attempt": attempt,
		}).WithError(err).Warn("Queue request failed, retrying...")
		return err
	}, bk)
	if err != nil {
		return c.translate(err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseAddr+path, body)
	if err != nil {
		return fmt.Errorf("could not make new request with context: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Length", strconv.Itoa(len(payload)))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &restapi.Err{StatusCode: resp.StatusCode}
		err = json.NewDecoder(resp.Body).Decode(apiErr)
		if err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (c *Client) translate(err error) error {
	var apiErr *restapi.Err
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusConflict:
			return fmt.Errorf("%w: %s", ErrQueueFull, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrQueueEmpty, apiErr.Message)
		}
	}
	return err
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*10),
		backoff.WithMaxInterval(time.Second*2),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
