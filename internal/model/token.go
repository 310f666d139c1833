package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and verifies access/refresh tokens.
type TokenManager interface {
	IssueAccess(claims AccessClaims) (string, error)
	IssueRefresh(claims RefreshClaims) (string, error)
	VerifyAccess(token string) (AccessClaims, error)
	VerifyRefresh(token string) (RefreshClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// AccessClaims is the identity carried by an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	FullName  string
	ExpiresAt time.Time
}

// NewAccessClaims builds access claims from a profile.
func NewAccessClaims(p Profile) AccessClaims {
	return AccessClaims{
		UserID:   p.ID,
		Username: p.Username,
		Email:    p.Email,
		FullName: p.FullName,
	}
}

// RefreshClaims is the identity carried by a refresh token.
type RefreshClaims struct {
	UserID    uuid.UUID
	ID        string
	ExpiresAt time.Time
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
