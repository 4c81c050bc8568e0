package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePrediction(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePrediction("maternal-risk", OutcomeHighRisk)
	m.ObservePrediction("maternal-risk", OutcomeHighRisk)
	m.ObservePrediction("depression-risk", OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Predictions.WithLabelValues("maternal-risk", OutcomeHighRisk)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Predictions.WithLabelValues("depression-risk", OutcomeError)))
}

func TestObserveUpstreamAndDraft(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveUpstream("maternal-risk", 150*time.Millisecond)
	m.ObserveDraft("depression-risk", "next")

	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamLatency))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DraftUpdates.WithLabelValues("depression-risk", "next")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObservePrediction("maternal-risk", OutcomeLowRisk)
		m.ObserveUpstream("maternal-risk", time.Second)
		m.ObserveDraft("maternal-risk", "save")
	})
}
