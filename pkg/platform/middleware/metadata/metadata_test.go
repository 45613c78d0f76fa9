package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/pkg/requestcontext"
)

func capture(t *testing.T, mw *Middleware, req *http.Request) context.Context {
	t.Helper()
	var captured context.Context
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context()
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.NotNil(t, captured)
	return captured
}

func trustedLoopback(t *testing.T) *Middleware {
	t.Helper()
	prefix, err := netip.ParsePrefix("127.0.0.0/8")
	require.NoError(t, err)
	return NewMiddleware(&Config{TrustedProxies: []netip.Prefix{prefix}})
}

func TestExtractClientIP(t *testing.T) {
	t.Run("uses RemoteAddr when no forwarding headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/fortune", nil)
		req.RemoteAddr = "203.0.113.7:44321"

		ctx := capture(t, NewMiddleware(nil), req)
		assert.Equal(t, "203.0.113.7", requestcontext.ClientIP(ctx))
	})

	t.Run("ignores XFF from untrusted peer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/fortune", nil)
		req.RemoteAddr = "203.0.113.7:44321"
		req.Header.Set("X-Forwarded-For", "198.51.100.9")

		ctx := capture(t, NewMiddleware(nil), req)
		assert.Equal(t, "203.0.113.7", requestcontext.ClientIP(ctx))
	})

	t.Run("trusts first XFF entry behind trusted proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/fortune", nil)
		req.RemoteAddr = "127.0.0.1:9000"
		req.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")

		ctx := capture(t, trustedLoopback(t), req)
		assert.Equal(t, "198.51.100.9", requestcontext.ClientIP(ctx))
	})

	t.Run("falls back on oversized XFF", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/fortune", nil)
		req.RemoteAddr = "127.0.0.1:9000"
		req.Header.Set("X-Forwarded-For", strings.Repeat("1", MaxXFFHeaderLength+1))

		ctx := capture(t, trustedLoopback(t), req)
		assert.Equal(t, "127.0.0.1", requestcontext.ClientIP(ctx))
	})

	t.Run("handles bracketed IPv6 RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/fortune", nil)
		req.RemoteAddr = "[2001:db8::1]:8443"

		ctx := capture(t, NewMiddleware(nil), req)
		assert.Equal(t, "2001:db8::1", requestcontext.ClientIP(ctx))
	})

	t.Run("captures user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logs", nil)
		req.RemoteAddr = "203.0.113.7:44321"
		req.Header.Set("User-Agent", "Mozilla/5.0")

		ctx := capture(t, NewMiddleware(nil), req)
		assert.Equal(t, "Mozilla/5.0", requestcontext.UserAgent(ctx))
	})
}
