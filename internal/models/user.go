package models

import (
	"time"
)

// UserStatus mirrors the status flag on stored user records.
type UserStatus string

const (
	StatusEnabled  UserStatus = "ENABLED"
	StatusDisabled UserStatus = "DISABLED"
)

// User is a stored user record. The phone number doubles as the login name.
type User struct {
	PhoneNum     string     `json:"phoneNum"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"passwordHash"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserAuthentication is the outcome of a successful form login. It carries
// the principal's identity but never the credentials that produced it.
type UserAuthentication struct {
	Username      string   `json:"username"`
	Authenticated bool     `json:"authenticated"`
	Authorities   []string `json:"authorities,omitempty"`
}
