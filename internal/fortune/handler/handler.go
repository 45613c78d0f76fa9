// Package handler exposes POST /api/fortune: decode, validate, rate-limit,
// dispatch, and shape the response envelope.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fortune-api/internal/fortune/models"
	"fortune-api/internal/fortune/validation"
	"fortune-api/pkg/platform/httputil"
)

// Generator produces a reading for one validated request. Satisfied by
// service.Service.
type Generator interface {
	Generate(ctx context.Context, req models.FortuneRequest) (any, error)
}

// Limiter gates a request after validation. Satisfied by ratelimit.Guard.
// A false return means the limiter already wrote the 429 response.
type Limiter interface {
	Allow(w http.ResponseWriter, r *http.Request) bool
}

type Handler struct {
	service Generator
	limiter Limiter
	logger  *slog.Logger
}

func New(service Generator, limiter Limiter, logger *slog.Logger) *Handler {
	return &Handler{service: service, limiter: limiter, logger: logger}
}

// Register mounts the fortune route behind the given middlewares. Method
// branching happens inside the handler so the 405 body can carry
// allowedMethods; OPTIONS is answered earlier by the CORS middleware.
func (h *Handler) Register(r chi.Router) {
	r.HandleFunc("/api/fortune", h.handle)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteMethodNotAllowed(w, http.MethodPost, http.MethodOptions)
		return
	}

	var req models.FortuneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.DebugContext(r.Context(), "fortune request body rejected",
			slog.String("error", err.Error()))
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Envelope{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result := validation.ValidateRequest(req.Type, req.Data)
	if !result.Valid() {
		httputil.WriteValidationErrors(w, result.Errors)
		return
	}

	// Quota is checked after validation so malformed requests never consume
	// the caller's budget.
	if !h.limiter.Allow(w, r) {
		return
	}

	payload, err := h.service.Generate(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, payload)
}
