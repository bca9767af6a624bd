package api

import (
	"time"

	"farmwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request. Only the route pattern is
// logged, never the query or cookies.
func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}
