package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	}

	switch {
	case status >= 500:
		l.logger.Error("HTTP request completed", args...)
	case status >= 400:
		l.logger.Warn("HTTP request completed", args...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}
}
