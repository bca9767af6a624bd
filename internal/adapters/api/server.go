// Package api provides the HTTP gateway screens talk to. Each request is
// served by a fresh FarmClient whose cookie jar is seeded from the stored
// gateway session, so no client state outlives a request.
package api

import (
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionCookieName is the gateway cookie holding the session id
const SessionCookieName = "farmwatch_session"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port               int
	SessionTTL         time.Duration
	DefaultCoordinates farm.Coordinates
	SecureCookies      bool
	LogRequests        bool
}

// HTTPServerAdapter implements the gateway using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	clientFactory ports.FarmClientFactory
	sessions      ports.SessionStore
	health        ports.SystemHealthChecker
	metrics       ports.MetricsCollector
	logger        ports.Logger
	gatherer      prometheus.Gatherer
	now           func() time.Time
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	ClientFactory ports.FarmClientFactory
	SessionStore  ports.SessionStore
	HealthChecker ports.SystemHealthChecker
	Metrics       ports.MetricsCollector
	Logger        ports.Logger
	// Gatherer backs /metrics; the default registry is used when nil
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	config := opts.Config
	if config.SessionTTL <= 0 {
		config.SessionTTL = 24 * time.Hour
	}
	if config.DefaultCoordinates == (farm.Coordinates{}) {
		config.DefaultCoordinates = farm.DefaultCoordinates
	}

	server := &HTTPServerAdapter{
		router:        gin.New(),
		config:        config,
		clientFactory: opts.ClientFactory,
		sessions:      opts.SessionStore,
		health:        opts.HealthChecker,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		gatherer:      gatherer,
		now:           time.Now,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ClientFactory == nil {
		return errors.NewValidationError("farm client factory is required")
	}
	if opts.SessionStore == nil {
		return errors.NewValidationError("session store is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(gin.Recovery())
	if s.config.LogRequests {
		s.router.Use(s.requestLogger())
	}

	api := s.router.Group("/api")
	{
		sessionRoutes := api.Group("/session")
		sessionRoutes.POST("/login", s.login)
		sessionRoutes.POST("/register", s.register)
		sessionRoutes.POST("/logout", s.logout)
		sessionRoutes.GET("/me", s.requireSession, s.currentUser)

		api.GET("/dashboard", s.requireSession, s.getDashboard)
		api.GET("/dashboard/:section", s.requireSession, s.refreshSection)
		api.GET("/sensors", s.requireSession, s.getSensors)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
