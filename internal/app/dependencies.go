package app

import (
	"fmt"
	"log/slog"

	"farmwatch.app/internal/adapters/database"
	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/adapters/infrastructure"
	"farmwatch.app/internal/config"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type DependencyContainer struct {
	config   *config.Config
	db       *gorm.DB
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts
	health   ports.SystemHealthChecker
	closers  []func() error
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	container.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := container.initializePorts(); err != nil {
		if cleanupErr := container.Cleanup(); cleanupErr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.initializeLogger()
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	sessionStore, err := c.initializeSessionStore()
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	slog.Info("Session store initialized", "type", sessionStore.Name())

	backend := configProvider.GetBackendConfig()
	weather := configProvider.GetWeatherConfig()

	decorators := []external.ClientDecorator{external.WithMetrics(metrics)}
	if c.config.Logging.LogRequests {
		decorators = append(decorators, external.WithLogging(appLogger))
		slog.Info("Farm API request logging enabled")
	}

	clientFactory := external.NewFarmAPIClientFactory(external.FarmAPIClientParams{
		BackendURL: backend.BaseURL,
		WeatherURL: weather.BaseURL,
		Timezone:   weather.Timezone,
		Timeout:    backend.Timeout,
		Logger:     appLogger,
	}, decorators...)

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		BackendChecker:      infrastructure.NewBackendHealthChecker(backend.BaseURL, backend.Timeout),
		SessionStoreChecker: infrastructure.NewSessionStoreHealthChecker(sessionStore),
		ConfigProvider:      configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		ClientFactory:  clientFactory,
		SessionStore:   sessionStore,
		ConfigProvider: configProvider,
		Logger:         appLogger,
		Metrics:        metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeLogger returns the file logger when LOG_FILE_PATH is set and
// falls back to a JSON slog logger on stdout
func (c *DependencyContainer) initializeLogger() ports.Logger {
	level := logger.ParseLevel(c.config.Logging.Level)

	if c.config.Logging.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			slog.Info("File logging enabled", "path", fileLogger.Path())
			c.closers = append(c.closers, fileLogger.Close)
			return fileLogger
		}
	}

	return infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(level).Logger)
}

func (c *DependencyContainer) initializeSessionStore() (ports.SessionStore, error) {
	if c.config.Session.StoreType == config.SessionStoreDatabase {
		return c.initializeDatabaseStore()
	}

	store, err := external.NewSessionStoreFactory().CreateSessionStore(&c.config.Session)
	if err != nil {
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		c.closers = append(c.closers, closer.Close)
	}
	return store, nil
}

func (c *DependencyContainer) initializeDatabaseStore() (ports.SessionStore, error) {
	slog.Info("Initializing database connection...", "driver", c.config.Session.Database.Driver)

	db, err := database.Open(&c.config.Session.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.db = db
	c.closers = append(c.closers, func() error { return database.Close(db) })

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("Database connection established successfully")
	return database.NewSessionRepositoryAdapter(db), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// HealthChecker returns the aggregate health checker
func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	return c.health
}

// Registry returns the Prometheus registry all collectors are registered on
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup releases the session store connections
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
