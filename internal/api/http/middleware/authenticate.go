package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/response"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// Cookie names used for the token pair.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// TokenService resolves a user profile from an access token.
type TokenService interface {
	Authenticate(ctx context.Context, accessToken string) (model.Profile, error)
}

// Authenticate validates access tokens and injects the user profile into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid access token
// for a user that still exists.
func (m *Authenticate) Handle(c *gin.Context) {
	profile, err := m.tokenService.Authenticate(c.Request.Context(), AccessToken(c.Request))
	if err != nil {
		response.Error(c, m.logger, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), profile))
	c.Next()
}

// AccessToken reads the access token from its cookie, falling back to the Authorization header.
func AccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
