package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path    string        // Endpoint path; a trailing "/" matches every path below it
	Method  string        // HTTP method, empty for any
	Limit   int           // Maximum requests per window
	Window  time.Duration // Time window
	Message string        // Error returned once the limit is exceeded
	Retry   string        // Human readable retry hint, e.g. "15 minutes"
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	apiLimit := getEnvInt("RATE_LIMIT_API_LIMIT", 100)
	apiWindow := getEnvDuration("RATE_LIMIT_API_WINDOW", 15*time.Minute)
	contactLimit := getEnvInt("RATE_LIMIT_CONTACT_LIMIT", 5)
	contactWindow := getEnvDuration("RATE_LIMIT_CONTACT_WINDOW", time.Hour)
	cleanupInterval := getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	whitelist := parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	blacklist := parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	return &Config{
		Enabled:         enabled,
		CleanupInterval: cleanupInterval,
		Whitelist:       whitelist,
		Blacklist:       blacklist,
		EndpointConfigs: EndpointConfigs(apiLimit, apiWindow, contactLimit, contactWindow),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations:
// 100 API requests per 15 minutes and 5 contact submissions per hour.
func DefaultEndpointConfigs() []EndpointConfig {
	return EndpointConfigs(100, 15*time.Minute, 5, time.Hour)
}

// EndpointConfigs builds the API and contact form limits. A contact
// submission counts against both.
func EndpointConfigs(apiLimit int, apiWindow time.Duration, contactLimit int, contactWindow time.Duration) []EndpointConfig {
	return []EndpointConfig{
		{
			Path:    "/api/",
			Limit:   apiLimit,
			Window:  apiWindow,
			Message: "Too many requests, please try again later",
			Retry:   humanDuration(apiWindow),
		},
		{
			Path:    "/api/contact",
			Method:  "POST",
			Limit:   contactLimit,
			Window:  contactWindow,
			Message: "Too many contact form submissions, please try again later",
			Retry:   humanDuration(contactWindow),
		},
	}
}

// humanDuration renders a window the way it appears in error bodies.
func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
