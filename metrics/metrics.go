// Package metrics wraps the Prometheus collectors describing diary
// operations. Every Collector owns a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type Collector struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	entries    prometheus.Gauge
}

func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "musicdiary"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by name and result",
		},
		[]string{"operation", "result"},
	)

	c.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Time spent inside a store operation, file write included",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs to ~1.6s
		},
		[]string{"operation"},
	)

	c.entries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entries",
			Help:      "Entries currently held by the store",
		},
	)

	c.registry.MustRegister(c.operations, c.duration, c.entries)

	return c
}

// Observe records one finished operation.
func (c *Collector) Observe(operation, result string, took time.Duration) {
	c.operations.WithLabelValues(operation, result).Inc()
	c.duration.WithLabelValues(operation).Observe(took.Seconds())
}

func (c *Collector) SetEntries(n int) {
	c.entries.Set(float64(n))
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
