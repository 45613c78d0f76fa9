// Package httputil centralizes JSON response writing and domain error
// translation so every endpoint shapes responses the same way.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	dErrors "fortune-api/pkg/domain-errors"
)

// Envelope is the response body shared by every API endpoint. Clients,
// including the static front-end pages, rely on success always being present
// and error being human-readable on failure.
type Envelope struct {
	Success        bool     `json:"success"`
	Data           any      `json:"data,omitempty"`
	Error          string   `json:"error,omitempty"`
	Errors         any      `json:"errors,omitempty"`
	RetryAfter     int      `json:"retryAfter,omitempty"`
	AllowedMethods []string `json:"allowedMethods,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore
	// encoding errors. The response body may be incomplete, but headers are sent.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteSuccess writes a 200 success envelope around the generated payload.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// WriteValidationErrors writes a 400 envelope carrying the ordered error list.
func WriteValidationErrors(w http.ResponseWriter, errs any) {
	WriteJSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "Validation failed",
		Errors:  errs,
	})
}

// WriteRateLimited writes the 429 envelope with a retry hint in both the
// body and the Retry-After header.
func WriteRateLimited(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	WriteJSON(w, http.StatusTooManyRequests, Envelope{
		Success:    false,
		Error:      "Rate limit exceeded",
		RetryAfter: retryAfter,
	})
}

// WriteMethodNotAllowed writes the 405 envelope listing the accepted verbs.
func WriteMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	WriteJSON(w, http.StatusMethodNotAllowed, Envelope{
		Success:        false,
		Error:          "Method not allowed",
		AllowedMethods: allowed,
	})
}

// WriteError translates transport-agnostic domain errors into HTTP status
// codes and failure envelopes. Upstream provider details never reach the
// caller; they are logged where the error originates.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		WriteJSON(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   "Internal server error",
		})
		return
	}

	switch domainErr.Code {
	case dErrors.CodeUpstreamTimeout, dErrors.CodeUpstreamError:
		// Same generic body for every provider failure mode.
		WriteJSON(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   "AI 분석 중 오류가 발생했습니다.",
		})
	case dErrors.CodeRateLimited:
		WriteJSON(w, http.StatusTooManyRequests, Envelope{
			Success: false,
			Error:   "Rate limit exceeded",
		})
	default:
		WriteJSON(w, CodeToHTTPStatus(domainErr.Code), Envelope{
			Success: false,
			Error:   domainErr.Error(),
		})
	}
}

// CodeToHTTPStatus translates domain error codes to HTTP status codes.
func CodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeUpstreamTimeout, dErrors.CodeUpstreamError, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
