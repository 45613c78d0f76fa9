package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/internal/fortune/models"
	"fortune-api/internal/fortune/service"
	"fortune-api/internal/fortune/validation"
	"fortune-api/internal/ratelimit"
	"fortune-api/internal/ratelimit/store/counter"
	dErrors "fortune-api/pkg/domain-errors"
)

type fakeLLM struct {
	calls    int
	response string
	err      error
}

func (f *fakeLLM) Complete(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Error   string                  `json:"error"`
	Errors  []validation.FieldError `json:"errors"`
}

func newRouterWithLimit(client *fakeLLM, limit int) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(client, logger, nil, service.WithClock(func() time.Time {
		return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	}))
	guard := ratelimit.NewGuard(counter.NewMemoryStore(limit, time.Minute), logger, nil)
	h := New(svc, guard, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func newRouter(client *fakeLLM) chi.Router {
	return newRouterWithLimit(client, 30)
}

func post(t *testing.T, r http.Handler, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/fortune", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandle_ZodiacDeterministicPath(t *testing.T) {
	client := &fakeLLM{}
	r := newRouter(client)

	rec, env := post(t, r, `{"type":"zodiac","data":{"zodiac":"aries"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data)
	assert.Equal(t, 0, client.calls, "deterministic path makes no upstream call")

	var fortune models.ZodiacFortune
	require.NoError(t, json.Unmarshal(env.Data, &fortune))
	assert.Equal(t, "양자리", fortune.Zodiac.Name)
}

func TestHandle_InvalidTypeReturnsSingleError(t *testing.T) {
	rec, env := post(t, newRouter(&fakeLLM{}), `{"type":"invalid-type","data":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Error)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "Invalid fortune type", env.Errors[0].Message)
}

func TestHandle_DailyMissingFieldsAccumulateInOrder(t *testing.T) {
	rec, env := post(t, newRouter(&fakeLLM{}), `{"type":"daily","data":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 3)
	assert.Equal(t, "name", env.Errors[0].Field)
	assert.Equal(t, "birthDate", env.Errors[1].Field)
	assert.Equal(t, "gender", env.Errors[2].Field)
}

func TestHandle_DailySuccess(t *testing.T) {
	client := &fakeLLM{response: "종합운: 85점 순조로운 하루입니다.\n오늘의 조언: 오전을 활용하세요."}
	rec, env := post(t, newRouter(client),
		`{"type":"daily","data":{"name":"홍길동","birthDate":"1990-05-15","gender":"male"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 1, client.calls)

	var fortune models.DailyFortune
	require.NoError(t, json.Unmarshal(env.Data, &fortune))
	assert.Equal(t, 85, fortune.Scores["overall"])
}

func TestHandle_UpstreamFailureReturnsGenericError(t *testing.T) {
	client := &fakeLLM{err: dErrors.New(dErrors.CodeUpstreamError, "completion request failed")}
	rec, env := post(t, newRouter(client),
		`{"type":"saju","data":{"yearPillar":"갑자","monthPillar":"을축","dayPillar":"병인","hourPillar":"정묘"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "AI 분석 중 오류가 발생했습니다.", env.Error)
}

func TestHandle_MalformedBodyIs400(t *testing.T) {
	rec, env := post(t, newRouter(&fakeLLM{}), `{"type":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", env.Error)
}

func TestHandle_RateLimitReturns429AfterValidation(t *testing.T) {
	r := newRouterWithLimit(&fakeLLM{}, 2)
	body := `{"type":"zodiac","data":{"zodiac":"aries"}}`

	for i := 0; i < 2; i++ {
		rec, _ := post(t, r, body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/fortune", strings.NewReader(body))
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var env struct {
		Success    bool   `json:"success"`
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Rate limit exceeded", env.Error)
	assert.Greater(t, env.RetryAfter, 0)

	// An invalid payload from the same exhausted client still gets the
	// validation response, not 429.
	rec2, env2 := post(t, r, `{"type":"invalid-type","data":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
	require.Len(t, env2.Errors, 1)
}

func TestHandle_NonPostIs405WithAllowedMethods(t *testing.T) {
	r := newRouter(&fakeLLM{})
	req := httptest.NewRequest(http.MethodGet, "/api/fortune", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body struct {
		Success        bool     `json:"success"`
		AllowedMethods []string `json:"allowedMethods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.AllowedMethods, http.MethodPost)
}
