package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate limit configuration for a request path and
// method. Exact path matches win; patterns ending in "/" match by prefix, so
// "/sessions/" covers "/sessions/{id}" and "/sessions/{id}/turns". Returns
// nil when nothing matches and the default limit should apply.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited; a Limit of 0 marks it unlimited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
