package token

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/saberalex11/education/internal/models"
)

// Service mints access tokens. It owns the value generation and expiry
// policy but does not touch storage; the Issuer commits tokens to the store.
type Service struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a token service. A refreshTTL of zero disables refresh
// tokens.
func NewService(accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) CreateAccessToken(auth *models.OAuthAuthentication) (*models.AccessToken, error) {
	now := time.Now()

	accessToken := &models.AccessToken{
		Value:     generateOpaqueValue(32),
		TokenType: "bearer",
		ExpiresAt: now.Add(s.accessTTL),
		Scopes:    auth.Request.Scopes,
	}

	if s.refreshTTL > 0 {
		accessToken.Refresh = &models.RefreshToken{
			Value:     uuid.NewString(),
			ExpiresAt: now.Add(s.refreshTTL),
		}
	}

	return accessToken, nil
}

func generateOpaqueValue(length int) string {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
