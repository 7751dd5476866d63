package feed

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether candidate is a well-formed http(s) URL that is
// also on the supported allow-list. Syntactically valid URLs outside the
// allow-list are rejected: the service only fetches known-good feeds.
func IsValidURL(candidate string, supported []string) bool {
	if candidate == "" {
		return false
	}

	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		return false
	}

	if _, err := url.ParseRequestURI(candidate); err != nil {
		return false
	}

	for _, s := range supported {
		if candidate == s {
			return true
		}
	}

	return false
}
