package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the qualification module.
type Metrics struct {
	// Signal gathering latencies by source
	SignalLatency *prometheus.HistogramVec

	// Qualification outcomes
	DecisionOutcome *prometheus.CounterVec

	// Overall qualification latency
	QualifyLatency prometheus.Histogram
}

// New creates a Metrics instance with all qualification metrics registered.
func New() *Metrics {
	return &Metrics{
		SignalLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dealerq_signal_duration_seconds",
			Help:    "Duration of signal gathering operations by source",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}), // source: "registry", "authorisation", "rating", "inventory"

		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerq_decision_outcomes_total",
			Help: "Total qualification outcomes",
		}, []string{"outcome"}),

		QualifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dealerq_qualify_duration_seconds",
			Help:    "Duration of full qualification including signal gathering",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// ObserveSignalLatency records the duration of gathering one signal.
func (m *Metrics) ObserveSignalLatency(source string, d time.Duration) {
	if m != nil {
		m.SignalLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementOutcome records a qualification outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveQualifyLatency records the total qualification duration.
func (m *Metrics) ObserveQualifyLatency(d time.Duration) {
	if m != nil {
		m.QualifyLatency.Observe(d.Seconds())
	}
}
