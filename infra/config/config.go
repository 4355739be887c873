package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL string // e.g. "https://api.blogsite.dev"
	StatePath  string // Path to the local state file (token, bookmarks, theme)
}

// Load reads configuration from a .env file (if present) and the
// environment. Real environment variables win over .env entries.
//
//	BLOGSITE_API_URL REST API base URL (default: https://api.blogsite.dev)
//	BLOGSITE_STATE   Path to state file (default: ~/.config/blogsite/state.json)
func Load() (Config, error) {
	// A missing .env is fine; explicit env vars are enough.
	_ = godotenv.Load()

	base := os.Getenv("BLOGSITE_API_URL")
	if base == "" {
		base = "https://api.blogsite.dev"
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid BLOGSITE_API_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid BLOGSITE_API_URL: only https is allowed")
	}
	base = strings.TrimRight(parsed.String(), "/")

	statePath := os.Getenv("BLOGSITE_STATE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		statePath = filepath.Join(home, ".config", "blogsite", "state.json")
	}

	return Config{
		APIBaseURL: base,
		StatePath:  statePath,
	}, nil
}
