// Package config provides environment-based configuration for the workbench
// utilities.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Download: User-Agent sent with text downloads
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	client.DownloadAsString(url, cfg.Download.UserAgent, callback)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - EVOTHINGS_USER_AGENT
package config
