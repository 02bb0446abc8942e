// Package custompromauto holds the prometheus registry shared by every ringqueue package,
// so that /metrics only exposes our own collectors.
package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric created through this package.
const Namespace = "ringqueue"

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	auto = promauto.With(registry)
}

func Registry() *prometheus.Registry {
	return registry
}

// Counter registers a namespaced counter.
func Counter(name, help string) prometheus.Counter {
	return auto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})
}

// CounterVec registers a namespaced counter partitioned by labels.
func CounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)
}

// Gauge registers a namespaced gauge.
func Gauge(name, help string) prometheus.Gauge {
	return auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})
}

// GaugeVec registers a namespaced gauge partitioned by labels.
func GaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)
}
