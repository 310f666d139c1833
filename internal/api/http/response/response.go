// Package response writes the JSON envelope every endpoint returns.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
)

// Envelope is the unified API response format.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Success sends a 200 OK response with data.
func Success(c *gin.Context, data any, message string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Error sends an error response and aborts the chain. Errors that are not an
// *apierrors.APIError become a generic 500 and their cause is logged.
func Error(c *gin.Context, log *logger.Logger, err error) {
	apiErr := apierrors.From(err)
	if apiErr.Kind == apierrors.KindInternal {
		log.Error("HTTP: request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error())
	}

	status := apiErr.Status()
	c.AbortWithStatusJSON(status, Envelope{
		StatusCode: status,
		Data:       nil,
		Message:    apiErr.Message,
		Success:    false,
	})
}

// BindError turns a body decoding failure into a client error.
func BindError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apierrors.NewErrBadRequest("Request body too large")
	}
	return apierrors.NewErrBadRequest("Invalid request body")
}
