package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the engine's core metrics: batch throughput, resolution
// quality, and interactive validation traffic.
type Metrics struct {
	// Batch metrics
	RowsProcessed  prometheus.Counter
	RowsExcluded   prometheus.Counter
	GatesTokenized prometheus.Counter

	// Resolution metrics
	GatesResolved     *prometheus.CounterVec
	UnresolvedMarkers prometheus.Counter

	// Interactive metrics
	ValidationRequests *prometheus.CounterVec
	ConflictsDetected  prometheus.Counter
	ValidationDuration prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all core metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RowsProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "batch",
				Name:      "rows_processed_total",
				Help:      "Total number of source rows normalized",
			},
		),

		RowsExcluded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "batch",
				Name:      "rows_excluded_total",
				Help:      "Total number of rows skipped for excluded experiment accessions",
			},
		),

		GatesTokenized: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "batch",
				Name:      "gates_tokenized_total",
				Help:      "Total number of gate tokens produced",
			},
		),

		GatesResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "resolution",
				Name:      "gates_total",
				Help:      "Total number of gate resolutions by outcome",
			},
			[]string{"outcome"},
		),

		UnresolvedMarkers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "resolution",
				Name:      "unresolved_markers_total",
				Help:      "Total number of marker labels no reference table knew",
			},
		),

		ValidationRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "validation",
				Name:      "requests_total",
				Help:      "Total number of validation requests by status",
			},
			[]string{"status"},
		),

		ConflictsDetected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hipcgates",
				Subsystem: "validation",
				Name:      "conflicts_total",
				Help:      "Total number of gate/panel level conflicts detected",
			},
		),

		ValidationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "hipcgates",
				Subsystem: "validation",
				Name:      "duration_seconds",
				Help:      "Validation request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// RecordRowProcessed increments the processed-row counter.
func (c *Metrics) RecordRowProcessed() {
	c.RowsProcessed.Inc()
}

// RecordRowExcluded increments the excluded-row counter.
func (c *Metrics) RecordRowExcluded() {
	c.RowsExcluded.Inc()
}

// RecordGatesTokenized adds the number of tokens produced for one row.
func (c *Metrics) RecordGatesTokenized(n int) {
	c.GatesTokenized.Add(float64(n))
}

// RecordResolution increments the resolution counter for one gate. An
// unresolved marker also increments the unresolved counter.
func (c *Metrics) RecordResolution(resolved bool) {
	outcome := "resolved"
	if !resolved {
		outcome = "unresolved"
		c.UnresolvedMarkers.Inc()
	}
	c.GatesResolved.WithLabelValues(outcome).Inc()
}

// RecordValidation records one validation request with its duration.
func (c *Metrics) RecordValidation(status string, conflicts int, duration time.Duration) {
	c.ValidationRequests.WithLabelValues(status).Inc()
	if conflicts > 0 {
		c.ConflictsDetected.Add(float64(conflicts))
	}
	c.ValidationDuration.Observe(duration.Seconds())
}
