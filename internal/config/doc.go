// Package config manages application configuration for the portal API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - AuthConfig: token signing and seeded account settings
//   - FormConfig: draft form session lifetimes
//   - LogConfig: logging settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated list of allowed origins
//	AUTH_SECRET          - token signing secret (required in production)
//	AUTH_TOKEN_TTL       - access token lifetime (default: 12h)
//	AUTH_ACCOUNTS_PATH   - path to the seeded accounts YAML file
//	FORM_DRAFT_TTL       - draft form session lifetime (default: 24h)
//	FORM_SWEEP_INTERVAL  - expired draft sweep interval (default: 10m)
//	LOG_LEVEL            - debug, info, warn, or error
//
// Sensible defaults are provided for development.
package config
