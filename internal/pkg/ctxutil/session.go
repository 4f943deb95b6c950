// Package ctxutil carries the authenticated session through context.
// Session state is explicit per-request, never a process-wide global:
// it begins when the auth middleware validates a credential exchange and
// ends with the request, so handlers and tests see exactly the identity
// they were handed.
package ctxutil

import (
	"context"

	"gother/internal/model/auth"
)

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// Session is the identity attached to one authenticated request
type Session struct {
	UserID  string
	Profile *auth.User // loaded fresh per request; nil for anonymous calls
}

// WithSession injects the session into the context
func WithSession(ctx context.Context, s *Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession extracts the session from the context.
// The second return value reports whether a session is present.
func GetSession(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sessionKey).(*Session)
	if !ok || s == nil || s.UserID == "" {
		return nil, false
	}
	return s, true
}

// GetUserID extracts just the user ID from the context
func GetUserID(ctx context.Context) (string, bool) {
	s, ok := GetSession(ctx)
	if !ok {
		return "", false
	}
	return s.UserID, true
}
