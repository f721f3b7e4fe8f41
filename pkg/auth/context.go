package auth

import "context"

// UserContext carries the authenticated user through a request
type UserContext struct {
	UserID string
	Email  string
}

type contextKey struct{}

// SetUserInContext attaches the authenticated user to the context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil when the
// request did not pass authentication middleware.
func GetUserFromContext(ctx context.Context) *UserContext {
	user, _ := ctx.Value(contextKey{}).(*UserContext)
	return user
}
