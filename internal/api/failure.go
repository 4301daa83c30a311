package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/saberalex11/education/internal/auth"
	"github.com/saberalex11/education/internal/token"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: code, Message: message})
}

// writeAuthenticationError maps a form-login failure to a response. Unknown
// users and wrong passwords share one message.
func writeAuthenticationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_grant", "bad credentials")
	case errors.Is(err, auth.ErrAccountDisabled):
		writeError(w, http.StatusUnauthorized, "invalid_grant", "account disabled")
	default:
		slog.Error("authentication failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server_error", "authentication failed")
	}
}

// writeIssuanceError maps a token issuance failure to a status and an OAuth
// error code.
func writeIssuanceError(w http.ResponseWriter, err error) {
	var issueErr *token.Error
	if !errors.As(err, &issueErr) {
		slog.Error("token issuance failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server_error", "token issuance failed")
		return
	}

	switch issueErr.Kind {
	case token.KindMissingClientHeader, token.KindUnknownClient, token.KindClientSecretMismatch:
		writeError(w, http.StatusUnauthorized, "invalid_client", issueErr.Message)
	case token.KindMalformedClientCredentials:
		writeError(w, http.StatusUnauthorized, "invalid_request", issueErr.Message)
	default:
		slog.Error("token issuance failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server_error", issueErr.Message)
	}
}
