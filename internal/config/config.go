// Package config provides configuration loading and validation for the CLI
// and the HTTP service.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/stacklyzer/internal/fetch"
	"gopkg.in/yaml.v3"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 4000

// Config represents settings that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Fetching
	Timeout      int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`               // Request timeout in seconds
	UserAgent    string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`         // User-Agent header sent to sites
	MaxRedirects int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty"`   // Redirects followed before giving up
	MaxBodyBytes int64  `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty"` // Upper bound on bytes read per page

	// Service
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`                 // HTTP listen port
	FrontendURL string `json:"frontend_url,omitempty" yaml:"frontend_url,omitempty"` // Allowed CORS origin
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("config error: 'timeout' must be non-negative")
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("config error: 'max_redirects' must be non-negative")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	if c.FrontendURL != "" {
		u, err := url.Parse(c.FrontendURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config error: 'frontend_url' must be an http(s) origin: %s", c.FrontendURL)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.FrontendURL == "" {
		result.FrontendURL = defaults.FrontendURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Timeout == 0 {
		result.Timeout = defaults.Timeout
	}
	if result.MaxRedirects == 0 {
		result.MaxRedirects = defaults.MaxRedirects
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchOptions converts the fetch settings into fetch.Options. Zero values
// fall back to the fetch package defaults.
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if c.Timeout > 0 {
		opts.Timeout = time.Duration(c.Timeout) * time.Second
	}
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}
	if c.MaxRedirects > 0 {
		opts.MaxRedirects = c.MaxRedirects
	}
	if c.MaxBodyBytes > 0 {
		opts.MaxBodyBytes = c.MaxBodyBytes
	}
	return opts
}
