package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field rules that struct tags cannot express.
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be in 4..31 (got %d)", c.Auth.PasswordHashCost))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.Redis.Enabled() && c.Redis.CatalogTTL <= 0 {
		errs = append(errs, fmt.Errorf("redis.catalog_ttl must be > 0 (got %v)", c.Redis.CatalogTTL))
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("ratelimit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute))
	}
	if c.RateLimit.CleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("ratelimit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path))
	}

	return errors.Join(errs...)
}
