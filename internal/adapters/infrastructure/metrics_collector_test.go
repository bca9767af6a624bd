package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewPrometheusMetricsCollector(registry)
	ctx := context.Background()

	collector.RecordClientCall(ctx, "weather", "success", 120*time.Millisecond)
	collector.RecordClientCall(ctx, "weather", "success", 80*time.Millisecond)
	collector.RecordClientCall(ctx, "soil", "auth_error", 10*time.Millisecond)
	collector.RecordSessionEvent(ctx, "login")
	collector.RecordSessionEvent(ctx, "login")
	collector.RecordSessionEvent(ctx, "logout")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.requests.WithLabelValues("weather", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requests.WithLabelValues("soil", "auth_error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.sessionEvents.WithLabelValues("login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.sessionEvents.WithLabelValues("logout")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.latency))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{
		"farm_client_requests_total",
		"farm_client_request_duration_seconds",
		"farm_gateway_session_events_total",
	}, names)
}

func TestPrometheusMetricsCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
	})
}
