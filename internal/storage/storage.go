package storage

import (
	"context"

	"github.com/saberalex11/education/internal/models"
)

// TokenStore persists the binding between an access token and the
// authentication it represents. Implementations must be safe for
// concurrent use. Lookup returns (nil, nil) for unknown or expired tokens.
type TokenStore interface {
	Store(ctx context.Context, token *models.AccessToken, auth *models.OAuthAuthentication) error
	Lookup(ctx context.Context, tokenValue string) (*models.OAuthAuthentication, error)
	Remove(ctx context.Context, tokenValue string) error
}

// UserStore persists user records keyed by phone number. GetUser returns
// (nil, nil) when no record exists.
type UserStore interface {
	GetUser(ctx context.Context, phoneNum string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	UserExists(ctx context.Context, phoneNum string) (bool, error)
}

// TokenBinding is the stored shape of a token and its authentication.
type TokenBinding struct {
	Token *models.AccessToken         `json:"token"`
	Auth  *models.OAuthAuthentication `json:"auth"`
}
