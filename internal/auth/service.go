package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/saberalex11/education/internal/models"
	"github.com/saberalex11/education/internal/storage"
)

var (
	// ErrBadCredentials covers both unknown users and wrong passwords, so a
	// caller cannot tell the two apart.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrAccountDisabled is returned for users whose status is not ENABLED.
	ErrAccountDisabled = errors.New("account disabled")
)

// Service authenticates form credentials against the user store.
type Service struct {
	users  storage.UserStore
	logger *slog.Logger
}

func NewService(users storage.UserStore, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Authenticate verifies a phone number and raw password and returns the
// resulting authentication. Credentials are never carried past this point.
func (s *Service) Authenticate(ctx context.Context, phoneNum, password string) (*models.UserAuthentication, error) {
	user, err := s.users.GetUser(ctx, phoneNum)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrBadCredentials
	}

	principal := NewPrincipal(*user)

	if !principal.Enabled() || !principal.AccountNonLocked() {
		s.logger.Warn("login rejected for disabled account", "username", principal.Username())
		return nil, ErrAccountDisabled
	}

	if !principal.VerifyPassword(password) {
		return nil, ErrBadCredentials
	}

	return &models.UserAuthentication{
		Username:      principal.Username(),
		Authenticated: true,
		Authorities:   principal.Authorities(),
	}, nil
}
