package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AppSecretConfig holds the shared secret that the mobile app presents when
// requesting API tokens. Only a bcrypt hash of the secret is kept in memory.
type AppSecretConfig struct {
	BcryptCost int
	hash       []byte
}

// NewAppSecretConfig creates the app secret configuration from environment
// variables. It reads ANDROID_APP_SECRET (optional) and BCRYPT_COST
// (default: 10). Without a secret, every app token is rejected.
func NewAppSecretConfig() (*AppSecretConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "10"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &AppSecretConfig{BcryptCost: cost}
	if err := config.normalize(); err != nil {
		return nil, err
	}

	if err := config.SetSecret(os.Getenv("ANDROID_APP_SECRET")); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *AppSecretConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// SetSecret replaces the configured secret. An empty secret disables app tokens.
func (c *AppSecretConfig) SetSecret(secret string) error {
	if secret == "" {
		c.hash = nil
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), c.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash app secret: %w", err)
	}
	c.hash = hash
	return nil
}

// Enabled reports whether a secret is configured.
func (c *AppSecretConfig) Enabled() bool {
	return c != nil && len(c.hash) > 0
}

// Verify reports whether token matches the configured secret.
func (c *AppSecretConfig) Verify(token string) bool {
	if !c.Enabled() || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(token)) == nil
}
