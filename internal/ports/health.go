package ports

import "context"

// HealthChecker checks one gateway dependency
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the outcome of one check. Details carries whatever the
// checker measured (store type, backend status code, latency).
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthReport holds the status of every checked component by name
type HealthReport map[string]HealthStatus

// Healthy reports whether every component in the report is healthy
func (r HealthReport) Healthy() bool {
	for _, status := range r {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}

// Unhealthy returns the names of the failing components
func (r HealthReport) Unhealthy() []string {
	var names []string
	for name, status := range r {
		if status.Status != StatusHealthy {
			names = append(names, name)
		}
	}
	return names
}

// SystemHealthChecker runs every registered check
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) HealthReport
}
