package feed

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestIsValidURL(t *testing.T) {
	supported := []string{
		"https://www.lemonde.fr/rss/une.xml",
		"http://feeds.example.com/news.xml",
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"supported https feed", "https://www.lemonde.fr/rss/une.xml", true},
		{"supported http feed", "http://feeds.example.com/news.xml", true},
		{"empty string", "", false},
		{"not a url", "not-a-valid-url", false},
		{"missing scheme", "www.lemonde.fr/rss/une.xml", false},
		{"protocol relative", "//www.lemonde.fr/rss/une.xml", false},
		{"unsupported scheme", "ftp://www.lemonde.fr/rss/une.xml", false},
		{"http prefix but unparsable", "http://%zz", false},
		{"valid url off the allow-list", "https://example.com/feed.xml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.candidate, supported))
		})
	}
}
