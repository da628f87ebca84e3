// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the non-database process configuration.
type Config struct {
	HTTPPort string

	// LLMServiceAddr is the gRPC address of the inference sidecar.
	LLMServiceAddr string

	// GitHubToken authenticates clones, pushes and PR creation.
	GitHubToken string
	// GitLogin and GitUserID form the noreply commit identity.
	GitLogin  string
	GitUserID int64

	// DefaultModel is used when a session has none set.
	DefaultModel string
}

// Load reads configuration from the environment. GITHUB_TOKEN is the only
// hard requirement; sandbox credentials are validated separately by the
// sandbox client.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LLMServiceAddr: getEnv("LLM_SERVICE_ADDR", "localhost:50051"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		GitLogin:       getEnv("GIT_LOGIN", "stratuscode[bot]"),
		DefaultModel:   getEnv("DEFAULT_MODEL", "gpt-4o"),
	}

	if cfg.GitHubToken == "" {
		return Config{}, fmt.Errorf("GITHUB_TOKEN is required")
	}

	if v := os.Getenv("GIT_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GIT_USER_ID %q: %w", v, err)
		}
		cfg.GitUserID = id
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
