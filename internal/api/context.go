package api

import (
	"context"

	"github.com/saberalex11/education/internal/models"
)

type authContextKey struct{}

// WithAuthentication attaches a validated token authentication to the
// request context.
func WithAuthentication(ctx context.Context, auth *models.OAuthAuthentication) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// AuthenticationFromContext returns the authentication attached by the
// bearer policy middleware, or nil for anonymous requests.
func AuthenticationFromContext(ctx context.Context) *models.OAuthAuthentication {
	auth, _ := ctx.Value(authContextKey{}).(*models.OAuthAuthentication)
	return auth
}
