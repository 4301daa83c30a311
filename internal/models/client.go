package models

// Client represents a registered API consumer, identified by an id/secret
// pair. Client records are immutable for the duration of a request.
type Client struct {
	ID         string   `json:"id" yaml:"id"`
	Secret     string   `json:"-" yaml:"secret"`
	Scopes     []string `json:"scopes" yaml:"scopes"`
	GrantTypes []string `json:"grant_types" yaml:"grant_types"`
}
