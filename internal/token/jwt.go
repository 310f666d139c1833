package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
)

// ErrConfiguration is returned by NewJWT when a secret or TTL is missing.
// It is fatal at startup.
var ErrConfiguration = errors.New("token manager misconfigured")

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// accessClaims is the wire form of an access token.
type accessClaims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	TokenType string    `json:"typ"`
}

// refreshClaims is the wire form of a refresh token. It carries only the subject id.
type refreshClaims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"id"`
	TokenType string    `json:"typ"`
}

// Options configures a JWT token manager.
type Options struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC with one secret per token kind.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWT creates a new JWT token manager.
func NewJWT(opts Options) (*JWT, error) {
	if opts.AccessSecret == "" {
		return nil, fmt.Errorf("%w: access token secret is empty", ErrConfiguration)
	}
	if opts.RefreshSecret == "" {
		return nil, fmt.Errorf("%w: refresh token secret is empty", ErrConfiguration)
	}
	if opts.AccessTTL <= 0 || opts.RefreshTTL <= 0 {
		return nil, fmt.Errorf("%w: token ttl must be positive", ErrConfiguration)
	}

	return &JWT{
		accessSecret:  []byte(opts.AccessSecret),
		refreshSecret: []byte(opts.RefreshSecret),
		accessTTL:     opts.AccessTTL,
		refreshTTL:    opts.RefreshTTL,
		now:           time.Now,
	}, nil
}

// AccessTTL returns the access token lifetime.
func (j *JWT) AccessTTL() time.Duration { return j.accessTTL }

// RefreshTTL returns the refresh token lifetime.
func (j *JWT) RefreshTTL() time.Duration { return j.refreshTTL }

// IssueAccess creates a short-lived access token.
func (j *JWT) IssueAccess(c model.AccessClaims) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		UserID:    c.UserID,
		Username:  c.Username,
		Email:     c.Email,
		FullName:  c.FullName,
		TokenType: typeAccess,
	})

	tokenString, err := token.SignedString(j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// IssueRefresh creates a long-lived refresh token with a random JTI.
func (j *JWT) IssueRefresh(c model.RefreshClaims) (string, error) {
	now := j.now()
	jti := c.ID
	if jti == "" {
		jti = uuid.NewString()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.refreshTTL)),
		},
		UserID:    c.UserID,
		TokenType: typeRefresh,
	})

	tokenString, err := token.SignedString(j.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, nil
}

// VerifyAccess validates an access token and returns its claims.
func (j *JWT) VerifyAccess(tokenString string) (model.AccessClaims, error) {
	claims := &accessClaims{}
	if err := j.parse(tokenString, claims, j.accessSecret); err != nil {
		return model.AccessClaims{}, err
	}
	if claims.TokenType != typeAccess {
		return model.AccessClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrTokenInvalid, claims.TokenType)
	}
	if claims.UserID == uuid.Nil {
		return model.AccessClaims{}, fmt.Errorf("%w: missing subject", model.ErrTokenInvalid)
	}

	return model.AccessClaims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		FullName:  claims.FullName,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyRefresh validates a refresh token and returns its claims.
func (j *JWT) VerifyRefresh(tokenString string) (model.RefreshClaims, error) {
	claims := &refreshClaims{}
	if err := j.parse(tokenString, claims, j.refreshSecret); err != nil {
		return model.RefreshClaims{}, err
	}
	if claims.TokenType != typeRefresh {
		return model.RefreshClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrTokenInvalid, claims.TokenType)
	}
	if claims.UserID == uuid.Nil {
		return model.RefreshClaims{}, fmt.Errorf("%w: missing subject", model.ErrTokenInvalid)
	}

	return model.RefreshClaims{
		UserID:    claims.UserID,
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *JWT) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.ErrTokenInvalid
	}
	return nil
}
