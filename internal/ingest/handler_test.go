package ingest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/pkg/requestcontext"
)

func newRouter(logger *slog.Logger) chi.Router {
	h := New(logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestCSPReport_Returns204(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(logger)

	body := `{"csp-report":{"document-uri":"https://doha.kr/fortune/","violated-directive":"script-src","blocked-uri":"https://evil.example"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/csp-report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "script-src")
}

func TestCSPReport_MalformedBodyStill204(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/csp-report", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogs_BatchIsLoggedWithParsedUserAgent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(logger)

	body := `{"entries":[{"level":"error","message":"fortune render failed","page":"/fortune/daily/"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(body))
	req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), "203.0.113.1",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "client log", line["msg"])
	assert.Equal(t, "fortune render failed", line["message"])
	assert.Equal(t, "Chrome", line["browser"])
	assert.Equal(t, "ERROR", line["level"])
}

func TestLogs_SingleEntryBodyAccepted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(logger)

	req := httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(`{"level":"info","message":"page loaded"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "page loaded")
}

func TestLogs_MalformedBodyStill200(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader("{{{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogs_EmptyBodyStill200(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/logs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
