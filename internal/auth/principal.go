package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/saberalex11/education/internal/models"
)

// Principal is the authenticated view of a user record for the duration of
// a login attempt. It is an immutable value; the password hash stays opaque
// and can only be checked through VerifyPassword.
type Principal struct {
	user models.User
}

func NewPrincipal(user models.User) Principal {
	return Principal{user: user}
}

// Username returns the user's phone number.
func (p Principal) Username() string {
	return p.user.PhoneNum
}

// Authorities is always empty; role-based authorization is not enforced at
// this layer.
func (p Principal) Authorities() []string {
	return nil
}

func (p Principal) Enabled() bool {
	return p.user.Status == models.StatusEnabled
}

func (p Principal) AccountNonLocked() bool {
	return p.user.Status == models.StatusEnabled
}

func (p Principal) AccountNonExpired() bool {
	return true
}

func (p Principal) CredentialsNonExpired() bool {
	return true
}

// VerifyPassword checks a candidate password against the stored hash.
func (p Principal) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.user.PasswordHash), []byte(candidate)) == nil
}
