package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultNamespace = "kpigen"
	defaultSubsystem = "generator"
)

// Manager owns the generation metrics.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Record synthesis
	recordsGenerated *prometheus.CounterVec
	outliers         *prometheus.CounterVec
	driftFallbacks   *prometheus.CounterVec
	chainsActive     prometheus.Gauge

	// Hotel simulation
	hotelDays           prometheus.Counter
	hotelStays          prometheus.Counter
	hotelRoomsExhausted prometheus.Counter

	// Output
	rowsWritten        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Init replaces the global manager with one built from opts on a fresh
// registry. Call it before any recording starts. Registry options are
// ignored; GetRegistry returns the new registry.
func Init(opts ...Option) {
	registry := prometheus.NewRegistry()
	all := append(opts[:len(opts):len(opts)], WithPrometheusRegistry(registry))
	globalManager = NewManager(all...)
	customRegistry = registry
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.recordsGenerated = auto.NewCounterVec(
		m.counterOpts("records_generated_total", "Records generated by mode and segment"),
		[]string{"mode", "segment"},
	)
	m.outliers = auto.NewCounterVec(
		m.counterOpts("outliers_injected_total", "Outliers injected by field"),
		[]string{"field"},
	)
	m.driftFallbacks = auto.NewCounterVec(
		m.counterOpts("drift_fallbacks_total", "Drifted metrics drawn fresh because the prior record lacked them"),
		[]string{"field"},
	)
	m.chainsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "chains_active",
		Help:        "Record chains currently being generated",
		ConstLabels: m.constLabels,
	})

	m.hotelDays = auto.NewCounter(m.counterOpts("hotel_days_total", "Hotel days simulated"))
	m.hotelStays = auto.NewCounter(m.counterOpts("hotel_stays_total", "Hotel stays generated"))
	m.hotelRoomsExhausted = auto.NewCounter(
		m.counterOpts("hotel_rooms_exhausted_total", "Hotel days that ran out of rooms before the drawn customer count"),
	)

	m.rowsWritten = auto.NewCounterVec(
		m.counterOpts("rows_written_total", "CSV data rows written by mode"),
		[]string{"mode"},
	)
	m.generationDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "generation_duration_seconds",
			Help:        "Wall time spent generating a dataset",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"mode"},
	)
}

// RecordGenerated counts one record for mode and segment.
func (m *Manager) RecordGenerated(mode, segment string) {
	if m.enabled {
		m.recordsGenerated.WithLabelValues(mode, segment).Inc()
	}
}

// RecordOutlier counts an outlier injected into field.
func (m *Manager) RecordOutlier(field string) {
	if m.enabled {
		m.outliers.WithLabelValues(field).Inc()
	}
}

// RecordDriftFallback counts a drifted field drawn fresh.
func (m *Manager) RecordDriftFallback(field string) {
	if m.enabled {
		m.driftFallbacks.WithLabelValues(field).Inc()
	}
}

// AddChainsActive moves the active chain gauge by delta.
func (m *Manager) AddChainsActive(delta int) {
	if m.enabled {
		m.chainsActive.Add(float64(delta))
	}
}

// RecordHotelDay counts a simulated day and its stays.
func (m *Manager) RecordHotelDay(stays int, exhausted bool) {
	if !m.enabled {
		return
	}
	m.hotelDays.Inc()
	m.hotelStays.Add(float64(stays))
	if exhausted {
		m.hotelRoomsExhausted.Inc()
	}
}

// RecordRowsWritten counts n rows written for mode.
func (m *Manager) RecordRowsWritten(mode string, n int) {
	if m.enabled {
		m.rowsWritten.WithLabelValues(mode).Add(float64(n))
	}
}

// ObserveGenerationDuration records how long a mode took to generate.
func (m *Manager) ObserveGenerationDuration(mode string, d time.Duration) {
	if m.enabled {
		m.generationDuration.WithLabelValues(mode).Observe(d.Seconds())
	}
}

// Package-level helpers on the global manager.

// RecordGenerated counts one record for mode and segment.
func RecordGenerated(mode, segment string) { globalManager.RecordGenerated(mode, segment) }

// RecordOutlier counts an outlier injected into field.
func RecordOutlier(field string) { globalManager.RecordOutlier(field) }

// RecordDriftFallback counts a drifted field drawn fresh.
func RecordDriftFallback(field string) { globalManager.RecordDriftFallback(field) }

// AddChainsActive moves the active chain gauge by delta.
func AddChainsActive(delta int) { globalManager.AddChainsActive(delta) }

// RecordHotelDay counts a simulated day and its stays.
func RecordHotelDay(stays int, exhausted bool) { globalManager.RecordHotelDay(stays, exhausted) }

// RecordRowsWritten counts n rows written for mode.
func RecordRowsWritten(mode string, n int) { globalManager.RecordRowsWritten(mode, n) }

// ObserveGenerationDuration records how long a mode took to generate.
func ObserveGenerationDuration(mode string, d time.Duration) {
	globalManager.ObserveGenerationDuration(mode, d)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
