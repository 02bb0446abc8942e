package client

import (
	"github.com/hedisam/ringqueue/internal/custompromauto"
)

var (
	retriedRequests = custompromauto.CounterVec("client_retried_requests_total", "Number of queue api requests that were retried", "op")
	fedValues       = custompromauto.Counter("client_fed_values_total", "Number of values successfully pushed by Feed")
	failedFeeds     = custompromauto.Counter("client_failed_feeds_total", "Number of values Feed gave up pushing")
)
