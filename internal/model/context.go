package model

import (
	"context"
)

// ContextManager stores the authenticated user on a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user Profile) context.Context
	GetUserFromContext(ctx context.Context) (Profile, bool)
}
