package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("SERVER_PORT", cfg.ServerPort)
	require("DB_HOST", cfg.DBHost)
	require("DB_PORT", cfg.DBPort)
	require("DB_USER", cfg.DBUser)
	require("DB_NAME", cfg.DBName)

	if cfg.Env.UsesSecretFiles() {
		require("db_password", cfg.DBPassword)
		require("jwt_secret", cfg.JWTSecret)
	} else {
		require("DB_PASSWORD", cfg.DBPassword)
		require("JWT_SECRET", cfg.JWTSecret)
	}

	if port, err := strconv.Atoi(cfg.ServerPort); cfg.ServerPort != "" && (err != nil || port <= 0 || port > 65535) {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must not be negative"})
	}
	if cfg.Env.IsProduction() && cfg.JWTSecret == "your-secret-key" {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "must not use the development default"})
	}

	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
}
