package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for identifier operations.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	FormatsTotal       prometheus.Counter
}

// New creates and registers all identifier metrics.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idcheck_validations_total",
			Help: "Total number of identifier validations by kind and outcome",
		}, []string{"kind", "outcome"}),
		ValidationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "idcheck_validation_duration_seconds",
			Help:    "Time spent running the validation pipeline",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
		}),
		FormatsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "idcheck_formats_total",
			Help: "Total number of identifier format operations",
		}),
	}
}

// ObserveValidation records one validation run.
func (m *Metrics) ObserveValidation(kind, outcome string, d time.Duration) {
	m.ValidationsTotal.WithLabelValues(kind, outcome).Inc()
	m.ValidationDuration.Observe(d.Seconds())
}

// IncrementFormats records one format operation.
func (m *Metrics) IncrementFormats() {
	m.FormatsTotal.Inc()
}
