package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users and their refresh-token slot.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user User) (Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (Profile, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, revokeSession bool) error
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	SwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user with authentication material.
// It never leaves the service layer; callers receive a Profile.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	Avatar       string
	PasswordHash string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Profile is a user without password hash and refresh token.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileUpdate holds optional profile changes. Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	FullName *string
	Avatar   *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.FullName == nil && u.Avatar == nil
}
