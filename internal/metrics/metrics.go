// Package metrics provides Prometheus metrics for channelmap.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for channelmap.
type Metrics struct {
	// Rebuild metrics
	RebuildsTotal  *prometheus.CounterVec
	RebuildsFailed *prometheus.CounterVec

	// Timing metrics
	RebuildDuration *prometheus.HistogramVec

	// Mapping state
	ChannelsMapped *prometheus.GaugeVec
	Conditions     *prometheus.GaugeVec

	// Error metrics
	SequencerErrors *prometheus.CounterVec
	ExportErrors    *prometheus.CounterVec
}

// Config holds metrics configuration.
type Config struct {
	Enabled bool
	Address string // Address for metrics HTTP server (e.g., ":9090")
}

var defaultMetrics *Metrics

// Init initializes the metrics package with global metrics.
// Call this once at startup.
func Init(namespace string) *Metrics {
	if namespace == "" {
		namespace = "channelmap"
	}

	m := &Metrics{
		RebuildsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rebuilds_total",
				Help:      "Total number of run-info rebuilds",
			},
			[]string{"document"},
		),
		RebuildsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rebuilds_failed_total",
				Help:      "Total number of run-info rebuilds that failed",
			},
			[]string{"document"},
		),
		RebuildDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rebuild_duration_seconds",
				Help:      "Time to rebuild run info from the experiment document",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"document"},
		),
		ChannelsMapped: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "channels_mapped",
				Help:      "Number of channels covered by the current run info",
			},
			[]string{"document"},
		),
		Conditions: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "conditions",
				Help:      "Number of conditions in the current run info",
			},
			[]string{"document"},
		),
		SequencerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sequencer_errors_total",
				Help:      "Total number of device message delivery errors",
			},
			[]string{"document"},
		),
		ExportErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "export_errors_total",
				Help:      "Total number of run-info export errors",
			},
			[]string{"document"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the global metrics instance.
// Returns nil if Init has not been called.
func Get() *Metrics {
	return defaultMetrics
}

// StartServer starts an HTTP server for Prometheus metrics scraping.
// Blocks until the server exits.
func StartServer(address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return http.ListenAndServe(address, mux)
}

// IncRebuilds increments the rebuild counter.
func (m *Metrics) IncRebuilds(document string) {
	m.RebuildsTotal.WithLabelValues(document).Inc()
}

// IncRebuildsFailed increments the failed rebuild counter.
func (m *Metrics) IncRebuildsFailed(document string) {
	m.RebuildsFailed.WithLabelValues(document).Inc()
}

// ObserveRebuildDuration records the rebuild time.
func (m *Metrics) ObserveRebuildDuration(document string, seconds float64) {
	m.RebuildDuration.WithLabelValues(document).Observe(seconds)
}

// SetMapping records the size of the current channel mapping.
func (m *Metrics) SetMapping(document string, channels, conditions int) {
	m.ChannelsMapped.WithLabelValues(document).Set(float64(channels))
	m.Conditions.WithLabelValues(document).Set(float64(conditions))
}

// IncSequencerErrors increments the device message error counter.
func (m *Metrics) IncSequencerErrors(document string) {
	m.SequencerErrors.WithLabelValues(document).Inc()
}

// IncExportErrors increments the export error counter.
func (m *Metrics) IncExportErrors(document string) {
	m.ExportErrors.WithLabelValues(document).Inc()
}
