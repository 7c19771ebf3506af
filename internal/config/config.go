// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AI provider names selectable via AI_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the full application configuration read from the environment.
type Config struct {
	Port        int
	DatabaseURL string

	// AI settings. An empty APIKey is not an error: the AI layer runs in
	// fallback-only mode without it.
	AIProvider string
	AIKey      string

	LogLevel string
}

// Load reads configuration from environment variables. Missing required
// values are collected and reported together so the operator sees every
// problem at once.
func Load() (*Config, error) {
	var missing []string

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if os.Getenv("JWT_SECRET") == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Port:        8080,
		DatabaseURL: databaseURL,
		AIProvider:  ProviderGemini,
		LogLevel:    "info",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if provider := os.Getenv("AI_PROVIDER"); provider != "" {
		cfg.AIProvider = strings.ToLower(provider)
	}
	switch cfg.AIProvider {
	case ProviderGemini:
		cfg.AIKey = os.Getenv("GEMINI_API_KEY")
	case ProviderOpenAI:
		cfg.AIKey = os.Getenv("OPENAI_API_KEY")
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER: %s", cfg.AIProvider)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is empty")
	}
	return nil
}
