// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds the program's runtime settings.
type Config struct {
	// StoryFile names an embedded story, or a JSON or YAML story on disk,
	// to play instead of the default one.
	StoryFile string `env:"FORESTQUEST_STORY_FILE"`

	LogLevel    string `env:"FORESTQUEST_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogEncoding string `env:"FORESTQUEST_LOG_ENCODING" envDefault:"json" validate:"oneof=json console"`
	LogFile     string `env:"FORESTQUEST_LOG_FILE" envDefault:"forestquest.log" validate:"required"`

	TelemetryEnabled bool            `env:"FORESTQUEST_TELEMETRY" envDefault:"true"`
	Honeycomb        HoneycombConfig `envPrefix:"HONEYCOMB_FORESTQUEST_"`
}

// HoneycombConfig holds the trace exporter settings.
type HoneycombConfig struct {
	APIKey   string `env:"API_KEY"`
	Dataset  string `env:"DATASET" envDefault:"forestquest" validate:"required"`
	Endpoint string `env:"ENDPOINT" envDefault:"https://api.honeycomb.io" validate:"required,url"`
}

// Load parses and validates configuration from environment variables.
// Call godotenv.Load first to pick up a local .env file.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// TracingEnabled reports whether traces should be exported.
// Honeycomb rejects unauthenticated exports, so an empty API key disables tracing.
func (c *Config) TracingEnabled() bool {
	return c.TelemetryEnabled && c.Honeycomb.APIKey != ""
}

// TelemetryHeaders returns the exporter headers for Honeycomb.
// Without an API key there is nothing to authenticate, so it returns nil.
func (c *Config) TelemetryHeaders() map[string]string {
	if c.Honeycomb.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.Honeycomb.APIKey,
		"x-honeycomb-dataset": c.Honeycomb.Dataset,
	}
}
