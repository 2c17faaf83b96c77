// Package metrics provides Prometheus metrics for the projection engine.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default multiplier buckets, centered on the neutral 1.0.
var defaultMultiplierBuckets = []float64{0.70, 0.80, 0.90, 0.95, 0.98, 1.0, 1.02, 1.05, 1.10, 1.20, 1.40} //nolint:gochecknoglobals // read-only defaults

// Manager owns the projection metrics on a single registry.
type Manager struct {
	namespace         string
	subsystem         string
	multiplierBuckets []float64
	enabled           bool
	registry          *prometheus.Registry

	projections          prometheus.Counter
	projectionsCapped    *prometheus.CounterVec
	adjustmentMultiplier *prometheus.HistogramVec
	finalMultiplier      prometheus.Histogram
	lastProjection       prometheus.Gauge
	inputErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager on its own registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:         "dime",
		subsystem:         "projection",
		multiplierBuckets: defaultMultiplierBuckets,
		enabled:           true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.projections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "projections_total",
		Help:      "Total number of projections computed",
	})

	m.projectionsCapped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "capped_total",
		Help:      "Projections whose aggregate multiplier hit a cap, by bound",
	}, []string{"bound"})

	m.adjustmentMultiplier = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "adjustment_multiplier",
		Help:      "Distribution of individual adjustment multipliers",
		Buckets:   m.multiplierBuckets,
	}, []string{"adjustment"})

	m.finalMultiplier = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_multiplier",
		Help:      "Distribution of the clamped aggregate multiplier",
		Buckets:   m.multiplierBuckets,
	})

	m.lastProjection = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_projected_assists",
		Help:      "Projected assists of the most recent projection",
	})

	m.inputErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "input_errors_total",
		Help:      "Rejected input entries by field",
	}, []string{"field"})
}

// RecordProjection records one finished projection.
func (m *Manager) RecordProjection(final, projected float64) {
	if !m.enabled {
		return
	}
	m.projections.Inc()
	m.finalMultiplier.Observe(final)
	m.lastProjection.Set(projected)
}

// RecordCapped increments the capped counter for bound ("min" or "max").
func (m *Manager) RecordCapped(bound string) {
	if !m.enabled {
		return
	}
	m.projectionsCapped.WithLabelValues(bound).Inc()
}

// RecordAdjustment observes one individual multiplier.
func (m *Manager) RecordAdjustment(adjustment string, value float64) {
	if !m.enabled {
		return
	}
	m.adjustmentMultiplier.WithLabelValues(adjustment).Observe(value)
}

// RecordInputError counts a rejected input entry.
func (m *Manager) RecordInputError(field string) {
	if !m.enabled {
		return
	}
	m.inputErrors.WithLabelValues(field).Inc()
}

// Registry returns the registry the manager writes to.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// atomically, for a node-exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// RecordInputError counts a rejected input entry on the global manager.
func RecordInputError(field string) {
	globalManager.RecordInputError(field)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
