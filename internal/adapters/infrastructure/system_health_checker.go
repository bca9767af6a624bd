package infrastructure

import (
	"context"
	"sync"

	"farmwatch.app/internal/ports"
	"golang.org/x/sync/errgroup"
)

// SystemHealthChecker runs the component checks concurrently and adds the
// effective upstream configuration to the report
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the checks to run; nil checks are skipped
type SystemHealthCheckerConfig struct {
	BackendChecker      ports.HealthChecker
	SessionStoreChecker ports.HealthChecker
	ConfigProvider      ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.BackendChecker != nil {
		checkers["backend"] = config.BackendChecker
	}
	if config.SessionStoreChecker != nil {
		checkers["sessionStore"] = config.SessionStoreChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every check. A slow backend does not delay the store check.
func (s *SystemHealthChecker) CheckAll(ctx context.Context) ports.HealthReport {
	report := make(ports.HealthReport, len(s.checkers)+1)
	var mutex sync.Mutex

	var group errgroup.Group
	for name, checker := range s.checkers {
		name, checker := name, checker
		group.Go(func() error {
			status := checker.Check(ctx)
			mutex.Lock()
			report[name] = status
			mutex.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	if s.configProvider != nil {
		backend := s.configProvider.GetBackendConfig()
		weather := s.configProvider.GetWeatherConfig()
		report["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"backendURL": backend.BaseURL,
				"weatherURL": weather.BaseURL,
				"timezone":   weather.Timezone,
			},
		}
	}

	return report
}
