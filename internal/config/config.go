package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultUserAgent identifies the workbench in outbound downloads.
const DefaultUserAgent = "EvothingsWorkbench/2.0"

// Config holds all workbench utility configuration.
type Config struct {
	Logging  LogConfig
	Download DownloadConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// DownloadConfig holds HTTP download configuration.
type DownloadConfig struct {
	UserAgent string `envconfig:"EVOTHINGS_USER_AGENT" default:"EvothingsWorkbench/2.0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Download: DownloadConfig{
			UserAgent: DefaultUserAgent,
		},
	}
}
