package ratelimit

import (
	"strings"
	"time"
)

// matchEndpoint resolves the limit that applies to a request. Exact matches
// win over prefix matches; unmatched paths use the default limit.
func matchEndpoint(path, method string, endpoints []Endpoint, defaultLimit int, defaultWindow time.Duration) Endpoint {
	for _, ec := range endpoints {
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}

	for _, ec := range endpoints {
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return Endpoint{
		Path:   path,
		Method: method,
		Limit:  defaultLimit,
		Window: defaultWindow,
		Burst:  defaultLimit,
	}
}
