package ratelimit

import (
	"strings"
)

// unlimited marks endpoints that bypass rate limiting
var unlimited = &EndpointConfig{}

// MatchEndpoint returns the configuration for a request path and method, or nil
// when the default limit applies. A config path ending in "/" matches every
// path below it; exact matches win over prefix matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
