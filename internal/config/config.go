package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Form   FormConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// AuthConfig holds token signing and account settings
type AuthConfig struct {
	Secret       string
	TokenTTL     time.Duration
	Issuer       string
	AccountsPath string
}

// FormConfig holds draft form session settings
type FormConfig struct {
	DraftTTL      time.Duration
	SweepInterval time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Auth: AuthConfig{
			Secret:       getEnv("AUTH_SECRET", ""),
			TokenTTL:     getDurationEnv("AUTH_TOKEN_TTL", 12*time.Hour),
			Issuer:       getEnv("AUTH_ISSUER", "portal.devcell.club"),
			AccountsPath: getEnv("AUTH_ACCOUNTS_PATH", ""),
		},
		Form: FormConfig{
			DraftTTL:      getDurationEnv("FORM_DRAFT_TTL", 24*time.Hour),
			SweepInterval: getDurationEnv("FORM_SWEEP_INTERVAL", 10*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Auth validation - the secret is critical in production
	if c.IsProduction() && c.Auth.Secret == "" {
		errs = append(errs, errors.New("AUTH_SECRET is required in production"))
	}
	if c.IsProduction() && c.Auth.AccountsPath == "" {
		errs = append(errs, errors.New("AUTH_ACCOUNTS_PATH is required in production"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_TTL must be positive"))
	}
	if c.Auth.Issuer == "" {
		errs = append(errs, errors.New("AUTH_ISSUER is required"))
	}

	// Form validation
	if c.Form.DraftTTL <= 0 {
		errs = append(errs, errors.New("FORM_DRAFT_TTL must be positive"))
	}
	if c.Form.SweepInterval <= 0 {
		errs = append(errs, errors.New("FORM_SWEEP_INTERVAL must be positive"))
	}

	// Log validation
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
