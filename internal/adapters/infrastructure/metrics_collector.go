package infrastructure

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus counters and histograms
type PrometheusMetricsCollector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	sessionEvents *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the client metrics with reg.
// A nil reg means the default registry served on /metrics.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farm_client_requests_total",
				Help: "The total number of farm client calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "farm_client_request_duration_seconds",
				Help:    "Farm client call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		sessionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farm_gateway_session_events_total",
				Help: "The total number of gateway session events",
			},
			[]string{"event"},
		),
	}
}

// RecordClientCall counts one call and observes its latency
func (m *PrometheusMetricsCollector) RecordClientCall(ctx context.Context, operation string, outcome string, duration time.Duration) {
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSessionEvent counts a login, logout or expiry on the gateway
func (m *PrometheusMetricsCollector) RecordSessionEvent(ctx context.Context, event string) {
	m.sessionEvents.WithLabelValues(event).Inc()
}
