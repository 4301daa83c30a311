package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/saberalex11/education/internal/storage"
)

// BearerPolicy guards every path outside the anonymous pattern set with a
// bearer token check against the token store. The resource server is
// stateless: each request's authentication is reconstituted from the token
// alone.
type BearerPolicy struct {
	patterns []string
	store    storage.TokenStore
}

func NewBearerPolicy(store storage.TokenStore, patterns []string) *BearerPolicy {
	return &BearerPolicy{
		patterns: patterns,
		store:    store,
	}
}

func (p *BearerPolicy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Anonymous(p.patterns, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "invalid_token", "missing bearer token")
			return
		}

		auth, err := p.store.Lookup(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			slog.Error("token lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "server_error", "failed to validate token")
			return
		}
		if auth == nil {
			writeError(w, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAuthentication(r.Context(), auth)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

// CORSMiddleware answers preflight requests and allows cross-origin calls.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
