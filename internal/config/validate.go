package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

const minJWTSecretLen = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Auth.Enabled && len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters when auth is enabled (got %d)",
			minJWTSecretLen, len(c.Auth.JWTSecret))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}

	switch l.Format {
	case "json", "text", "pretty":
	default:
		return fmt.Errorf("format must be one of json, text, pretty (got %q)", l.Format)
	}

	return nil
}

func (c CatalogConfig) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be >= 1 (got %d)", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.MaxPageSize > domain.MaxPageSize {
		return fmt.Errorf("max_page_size must be <= %d (got %d)", domain.MaxPageSize, c.MaxPageSize)
	}
	return nil
}
