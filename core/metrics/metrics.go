package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Row outcomes recorded by the engine and the cleaner.
const (
	OutcomeMerged    = "merged"
	OutcomeSkipped   = "skipped"
	OutcomeMalformed = "malformed"
	OutcomeRejected  = "rejected"
	OutcomeFlagged   = "flagged"
)

// Recorder counts rows per kind and outcome. A nil Recorder discards
// everything, so callers never need to check for one.
type Recorder struct {
	registry *prometheus.Registry
	rows     *prometheus.CounterVec
	deleted  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a recorder with its own registry.
func New(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Registry rows processed, by entity kind and outcome.",
		}, []string{"kind", "outcome"}),
		deleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_deleted_total",
			Help:      "Registry rows removed by the cleaner.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of one merge or clean pass.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"pass"}),
	}
	r.registry.MustRegister(r.rows, r.deleted, r.duration)
	return r
}

// Row records one row outcome.
func (r *Recorder) Row(kind, outcome string) {
	if r == nil {
		return
	}
	r.rows.WithLabelValues(kind, outcome).Inc()
}

// Deleted records n rows of kind removed from the registry.
func (r *Recorder) Deleted(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.deleted.WithLabelValues(kind).Add(float64(n))
}

// Since records the duration of a pass that started at start.
func (r *Recorder) Since(pass string, start time.Time) {
	if r == nil {
		return
	}
	r.duration.WithLabelValues(pass).Observe(time.Since(start).Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path in the text exposition format.
// An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
