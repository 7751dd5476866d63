package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	DatabaseURL     string
	DefaultFeedURL  string
	SupportedFeeds  []string
	ExternalIDField string
	FrontendURL     string
}

const defaultFeedURL = "https://www.lemonde.fr/rss/une.xml"

var defaultSupportedFeeds = []string{
	defaultFeedURL,
	"https://www.20minutes.fr/feeds/rss-une.xml",
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DefaultFeedURL:  getenv("DEFAULT_FEED_URL", defaultFeedURL),
		SupportedFeeds:  parseListEnv("SUPPORTED_FEEDS", defaultSupportedFeeds),
		ExternalIDField: getenv("EXTERNAL_ID_FIELD", "guid"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseListEnv(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var values []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return def
	}
	return values
}
