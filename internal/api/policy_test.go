package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/login", "/login", true},
		{"/login", "/logins", false},
		{"/login", "/login/extra", false},
		{"/api/**", "/api/public/ping", true},
		{"/api/**", "/api", true},
		{"/api/**", "/apifoo", false},
		{"/wx/**", "/wx/callback", true},
		{"/wx/**", "/wx", true},
		{"/**/*.js", "/app.js", true},
		{"/**/*.js", "/static/js/app.js", true},
		{"/**/*.js", "/app.jsx", false},
		{"/**/*.css", "/assets/site.css", true},
		{"/**/*.woff2", "/fonts/icons.woff2", true},
		{"/**/*.png", "/a/b/c/pic.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPattern(tt.pattern, tt.path))
		})
	}
}

func TestAnonymousPatternOrder(t *testing.T) {
	// First match in declared order wins; a path matching any declared
	// pattern is anonymous regardless of later patterns.
	assert.True(t, Anonymous(AnonymousPatterns, "/auth/token"))
	assert.True(t, Anonymous(AnonymousPatterns, "/mobile/token"))
	assert.True(t, Anonymous(AnonymousPatterns, "/email/token"))
	assert.True(t, Anonymous(AnonymousPatterns, "/login"))
	assert.True(t, Anonymous(AnonymousPatterns, "/api/public/ping"))
	assert.True(t, Anonymous(AnonymousPatterns, "/wx/mp/callback"))
	assert.True(t, Anonymous(AnonymousPatterns, "/static/app.js"))

	assert.False(t, Anonymous(AnonymousPatterns, "/private/data"))
	assert.False(t, Anonymous(AnonymousPatterns, "/me"))
	assert.False(t, Anonymous(AnonymousPatterns, "/admin/users"))
}
