package utils

import (
	"context"

	"webuild-dashboard/internal/data/entity"
)

type contextKey string

const sessionKey contextKey = "session"

// SetSessionContext attaches the authenticated session snapshot to the
// request context.
func SetSessionContext(ctx context.Context, sess *entity.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext is the single accessor for the caller's identity and
// role. Handlers must read role and user id from here, never from request
// bodies.
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*entity.Session)
	if !ok || sess == nil {
		return nil, false
	}
	return sess, true
}
