package models

import (
	"time"
)

// GrantTypeCustom marks tokens issued directly from a form-login success,
// bypassing the standard authorization-code and password grants.
const GrantTypeCustom = "custom"

// TokenRequest is the raw request for a token on behalf of a client.
type TokenRequest struct {
	Parameters map[string]string `json:"parameters"`
	ClientID   string            `json:"clientId"`
	Scopes     []string          `json:"scopes"`
	GrantType  string            `json:"grantType"`
}

// OAuthRequest captures the authorized form of a TokenRequest: the client
// identity, the grant type, and the scopes the client is actually allowed.
type OAuthRequest struct {
	ClientID  string   `json:"clientId"`
	Scopes    []string `json:"scopes"`
	GrantType string   `json:"grantType"`
}

// NewOAuthRequest authorizes a TokenRequest against a client record. The
// resulting scopes are the requested scopes intersected with the client's.
func NewOAuthRequest(req TokenRequest, client Client) OAuthRequest {
	allowed := make(map[string]bool, len(client.Scopes))
	for _, s := range client.Scopes {
		allowed[s] = true
	}

	var scopes []string
	for _, s := range req.Scopes {
		if allowed[s] {
			scopes = append(scopes, s)
		}
	}

	return OAuthRequest{
		ClientID:  client.ID,
		Scopes:    scopes,
		GrantType: req.GrantType,
	}
}

// OAuthAuthentication combines the authorized request with the authenticated
// user. It is the value bound to an access token in the token store.
type OAuthAuthentication struct {
	Request OAuthRequest       `json:"request"`
	User    UserAuthentication `json:"user"`
}

// RefreshToken is an opaque token that can be exchanged for a new access
// token until it expires.
type RefreshToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AccessToken is an opaque bearer token plus its metadata.
type AccessToken struct {
	Value     string        `json:"value"`
	TokenType string        `json:"tokenType"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Scopes    []string      `json:"scopes"`
	Refresh   *RefreshToken `json:"refresh,omitempty"`
}

// ExpiresIn reports the remaining lifetime in whole seconds.
func (t *AccessToken) ExpiresIn() int {
	remaining := time.Until(t.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}

// Expired reports whether the token is past its expiry.
func (t *AccessToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
