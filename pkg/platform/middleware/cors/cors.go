// Package cors implements the shared CORS policy for all API endpoints,
// replacing the per-endpoint header branching the endpoints would otherwise
// each repeat. Preflight OPTIONS requests are answered here and never reach
// handlers.
package cors

import (
	"net/http"
	"strings"
)

const (
	allowMethods = "GET,POST,OPTIONS"
	allowHeaders = "Content-Type, Accept, X-Requested-With, X-Request-ID"
	maxAge       = "86400"
)

// Config controls which origins may call the API.
type Config struct {
	// AllowedOrigins is the exact-match allow-list, e.g. https://doha.kr.
	AllowedOrigins []string
	// Development additionally allows any localhost / 127.0.0.1 origin.
	Development bool
}

// Handler applies the CORS policy and short-circuits preflight requests
// with a 200 response.
func Handler(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && allowed(cfg, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			} else {
				// Simple requests from unknown origins still get a response;
				// the browser enforces the mismatch.
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
			w.Header().Set("Access-Control-Max-Age", maxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowed(cfg Config, origin string) bool {
	for _, o := range cfg.AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	if cfg.Development {
		return strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")
	}
	return false
}
