package manseryeok

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fortune-api/pkg/platform/httputil"
	"fortune-api/pkg/validation"
)

// lookupRequest is the body of POST /api/manseryeok.
type lookupRequest struct {
	Year  int  `json:"year" validate:"required,gte=1841,lte=2110"`
	Month int  `json:"month" validate:"required,gte=1,lte=12"`
	Day   int  `json:"day" validate:"required,gte=1,lte=31"`
	Hour  *int `json:"hour,omitempty" validate:"omitempty,gte=0,lte=23"`
}

// Documented error strings for each failing field. Out-of-range dates are
// rejected, never clamped.
var lookupMessages = map[string]string{
	"Year":  "Year must be between 1841 and 2110",
	"Month": "Month must be between 1 and 12",
	"Day":   "Day must be between 1 and 31",
	"Hour":  "Hour must be between 0 and 23",
}

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.HandleFunc("/api/manseryeok", h.handle)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteMethodNotAllowed(w, http.MethodPost, http.MethodOptions)
		return
	}

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Envelope{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := validation.ValidateWithMessages(req, lookupMessages); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !ValidDate(req.Year, req.Month, req.Day) {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Envelope{
			Success: false,
			Error:   "Invalid date",
		})
		return
	}

	rec := h.service.Lookup(req.Year, req.Month, req.Day, req.Hour)

	// One calendar day never changes, so downstream caches may hold it.
	w.Header().Set("Cache-Control", "s-maxage=86400, stale-while-revalidate")
	httputil.WriteSuccess(w, rec)
}
