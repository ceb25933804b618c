package ratelimit

import (
	"strings"
)

// MatchEndpoints returns every endpoint configuration that applies to the
// request, in configuration order. A config whose path ends with "/" matches
// by prefix (e.g. "/api/" matches "/api/detect"). An empty Method matches any.
func MatchEndpoints(path string, method string, configs []EndpointConfig) []*EndpointConfig {
	var matches []*EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != "" && config.Method != method {
			continue
		}
		if config.Path == path ||
			(strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path)) {
			matches = append(matches, config)
		}
	}
	return matches
}
