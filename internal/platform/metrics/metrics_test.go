package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransition(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveTransition("WAITING")
	m.ObserveTransition("WAITING")
	m.ObserveTransition("APPROVED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("WAITING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("APPROVED")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTransition("WAITING")
		m.ObserveQuery("booker", "ALL")
	})
}
