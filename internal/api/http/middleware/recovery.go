package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/response"
	"github.com/dtroode/notes-server/internal/logger"
)

// Recovery turns panics into a 500 envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.Error(c, log, fmt.Errorf("panic: %v", recovered))
	})
}
