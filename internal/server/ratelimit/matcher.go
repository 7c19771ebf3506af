package ratelimit

import "strings"

// MatchEndpoint resolves the rate limit configuration for a request.
// Exact path+method matches win; config paths ending in "/" act as
// prefixes, so "/matches/" covers "/matches/{id}/accept". Returns nil
// when no tier applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes are never throttled. A zero limit means unlimited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method || !strings.HasSuffix(cfg.Path, "/") {
			continue
		}
		if strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
