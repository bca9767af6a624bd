package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"farmwatch.app/internal/adapters/api"
	"farmwatch.app/internal/config"
	"farmwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// sessionSweepInterval is how often expired gateway sessions are purged
// from stores that do not expire them on their own
const sessionSweepInterval = 10 * time.Minute

// expiringStore is implemented by session stores that need explicit purging
type expiringStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type Application struct {
	config *config.Config

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig builds the application from an already loaded
// configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeAdapters(); err != nil {
		if cleanupErr := deps.Cleanup(); cleanupErr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
		}
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	sessionConfig := a.ports.ConfigProvider.GetSessionConfig()
	weatherConfig := a.ports.ConfigProvider.GetWeatherConfig()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:               a.config.Server.Port,
			SessionTTL:         sessionConfig.TTL,
			DefaultCoordinates: weatherConfig.DefaultCoordinates,
			LogRequests:        a.config.Logging.LogRequests,
		},
		ClientFactory: a.ports.ClientFactory,
		SessionStore:  a.ports.SessionStore,
		HealthChecker: a.deps.HealthChecker(),
		Metrics:       a.ports.Metrics,
		Logger:        a.ports.Logger,
		Gatherer:      a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if store, ok := a.ports.SessionStore.(expiringStore); ok {
		go a.startSessionSweeper(ctx, store)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) startSessionSweeper(ctx context.Context, store expiringStore) {
	slog.Info("Starting session sweeper...", "interval", sessionSweepInterval)

	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session sweeper stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			a.sweepSessions(ctx, store)
		}
	}
}

func (a *Application) sweepSessions(ctx context.Context, store expiringStore) {
	removed, err := store.DeleteExpired(ctx)
	if err != nil {
		a.ports.Logger.Error("Failed to purge expired sessions", ports.F("error", err.Error()))
		return
	}
	if removed > 0 {
		a.ports.Logger.Info("Purged expired sessions", ports.F("count", removed))
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	close(a.stopChan)

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing session store", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
