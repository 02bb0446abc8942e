package memdb

import "github.com/prometheus/client_golang/prometheus"

func QueueSizeGauge(name string) prometheus.Gauge {
	return queueSize.WithLabelValues(name)
}

func QueueCapacityGauge(name string) prometheus.Gauge {
	return queueCapacity.WithLabelValues(name)
}

func RejectedPushesCounter() prometheus.Counter {
	return rejectedPushes
}
