package context

import (
	"context"

	"github.com/dtroode/notes-server/internal/model"
)

type userKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated user's profile on a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.Profile) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the profile stored by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.Profile, bool) {
	user, ok := ctx.Value(userKey{}).(model.Profile)
	return user, ok
}
