package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "session_id"
	scopeKeyKey  ctxKey = "scope_key"
)

// WithSessionID stores the study session ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the study session ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithScopeKey stores the canonical key of the active study scope.
func WithScopeKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, scopeKeyKey, key)
}

// ScopeKeyFromCtx extracts the scope key from the context.
// Returns an empty string if absent.
func ScopeKeyFromCtx(ctx context.Context) string {
	key, _ := ctx.Value(scopeKeyKey).(string)
	return key
}
