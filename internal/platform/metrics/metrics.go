package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingTransitions  *prometheus.CounterVec
	BookingQueries      *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shareit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_transitions_total",
			Help:      "Bookings entering each status.",
		}, []string{"status"}),

		BookingQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_queries_total",
			Help:      "Classified booking list queries by perspective and state.",
		}, []string{"perspective", "state"}),
	}
}

// ObserveTransition counts a booking entering status.
func (m *Metrics) ObserveTransition(status string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(status).Inc()
}

// ObserveQuery counts a classified list query.
func (m *Metrics) ObserveQuery(perspective, state string) {
	if m == nil {
		return
	}
	m.BookingQueries.WithLabelValues(perspective, state).Inc()
}
