package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saberalex11/education/internal/auth"
	"github.com/saberalex11/education/internal/models"
	"github.com/saberalex11/education/internal/token"
)

// Server holds the HTTP adapters over the authentication and issuance
// services.
type Server struct {
	authService *auth.Service
	issuer      *token.Issuer
}

func NewServer(authService *auth.Service, issuer *token.Issuer) *Server {
	return &Server{
		authService: authService,
		issuer:      issuer,
	}
}

// tokenResponse is the conventional OAuth token endpoint response shape.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func newTokenResponse(t *models.AccessToken) tokenResponse {
	resp := tokenResponse{
		AccessToken: t.Value,
		TokenType:   t.TokenType,
		ExpiresIn:   t.ExpiresIn(),
		Scope:       strings.Join(t.Scopes, " "),
	}
	if t.Refresh != nil {
		resp.RefreshToken = t.Refresh.Value
	}
	return resp
}

// TokenHandler handles the form login endpoint.
// POST /auth/token with username/password form fields and the client's
// Basic credentials in the Authorization header.
func (s *Server) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	userAuth, err := s.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		writeAuthenticationError(w, err)
		return
	}

	accessToken, err := s.issuer.Issue(r.Context(), r.Header.Get("Authorization"), userAuth)
	if err != nil {
		writeIssuanceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	json.NewEncoder(w).Encode(newTokenResponse(accessToken))
}

// MobileTokenHandler is the reserved SMS-code login entrypoint.
// POST /mobile/token
func (s *Server) MobileTokenHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotImplemented, "unsupported_grant_type", "mobile login is not available")
}

// EmailTokenHandler is the reserved email login entrypoint.
// POST /email/token
func (s *Server) EmailTokenHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotImplemented, "unsupported_grant_type", "email login is not available")
}

// MeHandler returns the authentication behind the presented bearer token.
// GET /me
func (s *Server) MeHandler(w http.ResponseWriter, r *http.Request) {
	authn := AuthenticationFromContext(r.Context())
	if authn == nil {
		writeError(w, http.StatusUnauthorized, "invalid_token", "no authentication")
		return
	}

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	json.NewEncoder(w).Encode(authn)
}

// PingHandler is an anonymous liveness probe under the public API prefix.
// GET /api/public/ping
func (s *Server) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"ping": "pong"})
}

// HealthHandler reports process health. Mounted under /api so probes reach
// it without a token.
// GET /api/health
func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
