package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/middleware"
	"github.com/dtroode/notes-server/internal/model"
)

// CookieOptions are the attributes of the token cookies.
type CookieOptions struct {
	Secure     bool
	SameSite   http.SameSite
	Domain     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// ParseSameSite maps a config value to http.SameSite. Unknown values fall back to Lax.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (o CookieOptions) set(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   o.Domain,
		MaxAge:   maxAge,
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: o.SameSite,
	})
}

func (o CookieOptions) setTokens(c *gin.Context, pair model.TokenPair) {
	o.set(c, middleware.AccessTokenCookie, pair.AccessToken, int(o.AccessTTL.Seconds()))
	o.set(c, middleware.RefreshTokenCookie, pair.RefreshToken, int(o.RefreshTTL.Seconds()))
}

func (o CookieOptions) clearTokens(c *gin.Context) {
	o.set(c, middleware.AccessTokenCookie, "", -1)
	o.set(c, middleware.RefreshTokenCookie, "", -1)
}
