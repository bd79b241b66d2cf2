package markdown

import (
	"net/url"
	"strings"
)

// resolveURL implements spec's relative-URL rule: empty strings and
// pure fragments pass through unchanged, already-absolute http(s) URLs
// pass through unchanged, and everything else is resolved against
// baseURL (falling back to manual construction if url.Parse/
// ResolveReference can't make sense of it). If baseURL is nil the
// original string is kept.
func resolveURL(raw string, baseURL *url.URL) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if baseURL == nil {
		return raw
	}

	if rel, err := url.Parse(raw); err == nil {
		return baseURL.ResolveReference(rel).String()
	}

	if strings.HasPrefix(raw, "/") {
		return baseURL.Scheme + "://" + baseURL.Host + raw
	}
	return baseDir(baseURL.String()) + raw
}

// baseDir returns everything up to and including the last "/" in s.
func baseDir(s string) string {
	idx := strings.LastIndex(s, "/")
	if idx < 0 {
		return s
	}
	return s[:idx+1]
}
