package api

import (
	"path"
	"strings"
)

// AnonymousPatterns are the path patterns reachable without a bearer token.
// Order matters: matching stops at the first hit.
var AnonymousPatterns = []string{
	"/login",
	"/auth/token",
	"/mobile/token",
	"/email/token",
	"/api/**",
	"/**/*.js",
	"/**/*.css",
	"/**/*.jpg",
	"/**/*.png",
	"/**/*.woff2",
	"/wx/**",
}

// Anonymous reports whether a request path matches any of the patterns.
func Anonymous(patterns []string, requestPath string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, requestPath) {
			return true
		}
	}
	return false
}

// MatchPattern matches a request path against an ant-style pattern:
// "**" spans any number of path segments, including none, and "*" matches
// within a single segment.
func MatchPattern(pattern, requestPath string) bool {
	return matchSegments(splitPath(pattern), splitPath(requestPath))
}

func splitPath(p string) []string {
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}

	if pattern[0] == "**" {
		for skip := 0; skip <= len(segments); skip++ {
			if matchSegments(pattern[1:], segments[skip:]) {
				return true
			}
		}
		return false
	}

	if len(segments) == 0 {
		return false
	}

	if !matchSegment(pattern[0], segments[0]) {
		return false
	}

	return matchSegments(pattern[1:], segments[1:])
}

func matchSegment(pattern, segment string) bool {
	// Segments never contain a slash, so path.Match gives exactly the
	// single-segment "*" semantics.
	ok, err := path.Match(pattern, segment)
	return err == nil && ok
}
