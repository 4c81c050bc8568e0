package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes
const (
	OutcomeHighRisk   = "high_risk"
	OutcomeLowRisk    = "low_risk"
	OutcomeError      = "error"
	OutcomeIncomplete = "incomplete"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Predictions     *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
	DraftUpdates    *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screening_predictions_total",
			Help: "Total number of assessment submissions by outcome",
		}, []string{"kind", "outcome"}),
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "screening_upstream_latency_seconds",
			Help:    "Latency of prediction service calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		DraftUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screening_draft_updates_total",
			Help: "Total number of form draft updates by action",
		}, []string{"kind", "action"}),
	}
}

// ObservePrediction counts one submission outcome. Safe on a nil receiver.
func (m *Metrics) ObservePrediction(kind, outcome string) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(kind, outcome).Inc()
}

// ObserveUpstream records the duration of one prediction service call.
func (m *Metrics) ObserveUpstream(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamLatency.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveDraft counts one draft update.
func (m *Metrics) ObserveDraft(kind, action string) {
	if m == nil {
		return
	}
	m.DraftUpdates.WithLabelValues(kind, action).Inc()
}
