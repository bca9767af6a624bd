package api

import (
	"net/http"

	"farmwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string             `json:"status"`
	Components ports.HealthReport `json:"components"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	report := s.health.CheckAll(c.Request.Context())

	if !report.Healthy() {
		s.logger.Warn("Health check failed", ports.F("components", report.Unhealthy()))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: ports.StatusUnhealthy, Components: report})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: ports.StatusHealthy, Components: report})
}
