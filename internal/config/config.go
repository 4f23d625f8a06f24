package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	AI      AIConfig      `toml:"ai"`
	Server  ServerConfig  `toml:"server"`
	Auth    AuthConfig    `toml:"auth"`
	History HistoryConfig `toml:"history"`
}

// AIConfig holds analysis provider settings. OpenRouter is the primary
// provider and Gemini the fallback; either key may be empty, but analysis
// requests fail when both are.
type AIConfig struct {
	OpenRouterAPIKey string `toml:"openrouter_api_key"`
	GeminiAPIKey     string `toml:"gemini_api_key"`
	OpenRouterModel  string `toml:"openrouter_model"`
	GeminiModel      string `toml:"gemini_model"`
	TimeoutSeconds   int    `toml:"timeout_seconds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// HistoryConfig holds local history cache settings.
type HistoryConfig struct {
	CacheDir string `toml:"cache_dir"`
}

const defaultConfigContent = `[ai]
openrouter_api_key = ""           # Or set OPENROUTER_API_KEY env var
gemini_api_key = ""               # Or set GEMINI_API_KEY env var
openrouter_model = "google/gemini-2.0-flash-001"
gemini_model = "gemini-2.0-flash"
timeout_seconds = 60

[server]
port = 8080

[auth]
jwt_secret = ""                   # Or set SITEPULSE_JWT_SECRET env var
token_ttl_hours = 24

[history]
cache_dir = ""                    # Defaults to <data-dir>/history
`

// Load reads and parses the TOML config from the given path. If the file does
// not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "port = 0" which would otherwise be silently
// replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("ai", "timeout_seconds") {
		if cfg.AI.TimeoutSeconds < 1 {
			return fmt.Errorf("invalid ai.timeout_seconds %d: must be >= 1", cfg.AI.TimeoutSeconds)
		}
	}
	if md.IsDefined("auth", "token_ttl_hours") {
		if cfg.Auth.TokenTTLHours < 1 {
			return fmt.Errorf("invalid auth.token_ttl_hours %d: must be >= 1", cfg.Auth.TokenTTLHours)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.AI.OpenRouterModel == "" {
		cfg.AI.OpenRouterModel = "google/gemini-2.0-flash-001"
	}
	if cfg.AI.GeminiModel == "" {
		cfg.AI.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 60
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.AI.OpenRouterAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.GeminiAPIKey = v
	}
	if v := os.Getenv("SITEPULSE_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.AI.TimeoutSeconds < 1 {
		return fmt.Errorf("invalid ai.timeout_seconds %d: must be >= 1", cfg.AI.TimeoutSeconds)
	}

	if cfg.AI.OpenRouterAPIKey == "" && cfg.AI.GeminiAPIKey == "" {
		slog.Warn("no provider API key configured: set openrouter_api_key or gemini_api_key, or the OPENROUTER_API_KEY / GEMINI_API_KEY environment variables")
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("auth.jwt_secret is empty: a random secret is generated at startup, so sessions will not survive restarts (set SITEPULSE_JWT_SECRET)")
	}

	return nil
}
