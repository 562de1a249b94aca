package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics for note store operations
type Collector struct {
	registry *prometheus.Registry

	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Notes      prometheus.Gauge
}

// NewCollector creates a collector with its own registry so tests can build
// as many as they like without duplicate registration
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "note_operations_total",
			Help:      "Total number of note store operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "note_operation_duration_seconds",
			Help:      "Note store operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	notes := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notes_stored",
			Help:      "Number of notes seen by the last list operation",
		},
	)

	registry.MustRegister(operations, duration, notes)

	return &Collector{
		registry:   registry,
		Operations: operations,
		Duration:   duration,
		Notes:      notes,
	}
}

// Observe records one operation. A nil collector records nothing.
func (c *Collector) Observe(operation, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Operations.WithLabelValues(operation, outcome).Inc()
	c.Duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetNotes records the number of stored notes
func (c *Collector) SetNotes(count int) {
	if c == nil {
		return
	}
	c.Notes.Set(float64(count))
}

// Registry returns the Prometheus registry for this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
