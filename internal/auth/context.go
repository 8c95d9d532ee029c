package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type contextKey int

// UserIDKey is the context key under which the authentication middleware
// stores the resolved user ID.
const UserIDKey contextKey = iota

// WithUserID attaches the authenticated user's ID to the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// UserIDFromContext returns the authenticated user's ID, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
