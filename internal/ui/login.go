package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LoginHandlers renders the embedded login page.
type LoginHandlers struct {
	templates *template.Template
}

func NewLoginHandlers() (*LoginHandlers, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded templates: %w", err)
	}

	return &LoginHandlers{
		templates: templates,
	}, nil
}

// LoginPageHandler serves the login form.
// GET /login
func (h *LoginHandlers) LoginPageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "login.html", nil); err != nil {
		slog.Error("Failed to render login page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
