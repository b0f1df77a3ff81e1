package middleware

import (
	"context"

	"bloglist/internal/models"
)

type tokenKey struct{}
type userKey struct{}

// WithToken attaches the raw bearer token extracted from the request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tokenKey{}).(string)
	return v, ok && v != ""
}

// WithUser attaches the resolved acting user after token verification.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func UserFrom(ctx context.Context) (models.User, bool) {
	v, ok := ctx.Value(userKey{}).(models.User)
	return v, ok
}
