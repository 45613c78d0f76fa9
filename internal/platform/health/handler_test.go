package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	h := New("production")

	rec := httptest.NewRecorder()
	h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "production", resp.Environment)
	assert.Equal(t, Version, resp.Version)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHandleLiveness(t *testing.T) {
	h := New("production")

	rec := httptest.NewRecorder()
	h.HandleLiveness(rec, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}

func TestHandleReadiness(t *testing.T) {
	t.Run("all checks passing", func(t *testing.T) {
		h := New("production")
		h.RegisterCheck("upstream", func() error { return nil })

		rec := httptest.NewRecorder()
		h.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Status)
		assert.Equal(t, "up", resp.Checks["upstream"])
	})

	t.Run("failing check returns 503", func(t *testing.T) {
		h := New("production")
		h.RegisterCheck("redis", func() error { return errors.New("connection refused") })

		rec := httptest.NewRecorder()
		h.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not_ready", resp.Status)
		assert.Contains(t, resp.Checks["redis"], "connection refused")
	})
}

func TestRegisterMountsRoutes(t *testing.T) {
	h := New("development")
	r := chi.NewRouter()
	h.Register(r)

	for _, path := range []string{"/api/health", "/api/health/live", "/api/health/ready"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
