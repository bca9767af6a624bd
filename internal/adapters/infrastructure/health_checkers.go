package infrastructure

import (
	"context"
	"net/http"
	"time"

	"farmwatch.app/internal/ports"
)

// SessionStoreHealthChecker reports whether the gateway session store answers
type SessionStoreHealthChecker struct {
	store ports.SessionStore
}

// NewSessionStoreHealthChecker creates a new session store health checker
func NewSessionStoreHealthChecker(store ports.SessionStore) *SessionStoreHealthChecker {
	return &SessionStoreHealthChecker{store: store}
}

// Check pings the store when it supports pinging
func (s *SessionStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "sessionStore",
		Details:   make(map[string]interface{}),
	}

	if s.store == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "session store is not configured"
		return status
	}
	status.Details["type"] = s.store.Name()

	if pinger, ok := s.store.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	status.Status = ports.StatusHealthy
	return status
}

// BackendHealthChecker reports whether the farm backend can be reached.
// Any HTTP response counts as reachable; only transport failures do not.
type BackendHealthChecker struct {
	baseURL string
	client  *http.Client
}

// NewBackendHealthChecker creates a new backend health checker
func NewBackendHealthChecker(baseURL string, timeout time.Duration) *BackendHealthChecker {
	return &BackendHealthChecker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Check sends a HEAD request to the backend base address
func (b *BackendHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "backend",
		Details:   map[string]interface{}{"url": b.baseURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, b.baseURL, nil)
	if err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}
	_ = resp.Body.Close()

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	status.Details["statusCode"] = resp.StatusCode
	status.Details["latencyMs"] = time.Since(start).Milliseconds()
	return status
}
