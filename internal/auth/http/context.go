// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"
)

// accountEmailKey is a context key type for storing the authenticated email.
type accountEmailKey struct{}

// sessionTokenKey is a context key type for storing the presented session token.
type sessionTokenKey struct{}

// WithAccountEmail stores the authenticated account email in the context.
// Called by the authentication middleware after successful token validation.
func WithAccountEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, accountEmailKey{}, email)
}

// GetAccountEmail retrieves the authenticated account email from the context.
// Returns ("", false) if no email was set.
func GetAccountEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(accountEmailKey{}).(string)
	return email, ok
}

// WithSessionToken stores the presented session token in the context so the
// logout handler can revoke the exact token that authenticated the request.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// GetSessionToken retrieves the presented session token from the context.
// Returns ("", false) if no token was set.
func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey{}).(string)
	return token, ok
}
