package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds configuration for the short-lived API tokens.
type JWTConfig struct {
	Secret            string
	ExpirationMinutes int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_MINUTES (default: 5).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_MINUTES")
	if expirationStr == "" {
		expirationStr = "5"
	}

	expirationMinutes, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %v", err)
	}

	config := &JWTConfig{
		Secret:            secret,
		ExpirationMinutes: expirationMinutes,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// Expiration returns the token lifetime.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationMinutes < 1 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES must be at least 1 minute, got: %d", c.ExpirationMinutes)
	}
	return nil
}
