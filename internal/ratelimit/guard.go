// Package ratelimit bounds per-client request rates for the generation
// endpoints. The counting backend is injected so single-instance deployments
// can use process memory while fleets share a Redis counter.
package ratelimit

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"fortune-api/internal/ratelimit/models"
	"fortune-api/pkg/platform/httputil"
	"fortune-api/pkg/requestcontext"
)

// Store is the counting backend.
type Store interface {
	Check(ctx context.Context, key string) (models.Decision, error)
}

// RejectionCounter records denied requests. Satisfied by metrics.Metrics.
type RejectionCounter interface {
	IncrementRateLimitRejections()
}

// Guard is called by handlers after validation and before dispatch, so a
// malformed request never consumes quota.
type Guard struct {
	store   Store
	logger  *slog.Logger
	metrics RejectionCounter
}

func NewGuard(store Store, logger *slog.Logger, metrics RejectionCounter) *Guard {
	return &Guard{store: store, logger: logger, metrics: metrics}
}

// Allow checks the client's budget and reports whether the request may
// proceed. On denial it writes the 429 envelope itself. Store failures fail
// open: a broken counter must not take the API down.
func (g *Guard) Allow(w http.ResponseWriter, r *http.Request) bool {
	ctx := r.Context()
	key := requestcontext.ClientIP(ctx)
	if key == "" {
		key = r.RemoteAddr
	}

	decision, err := g.store.Check(ctx, key)
	if err != nil {
		g.logger.ErrorContext(ctx, "rate limit check failed, allowing request",
			slog.String("error", err.Error()))
		return true
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

	if !decision.Allowed {
		if g.metrics != nil {
			g.metrics.IncrementRateLimitRejections()
		}
		g.logger.WarnContext(ctx, "rate limit exceeded",
			slog.String("path", r.URL.Path),
			slog.Int("retry_after", decision.RetryAfter))
		httputil.WriteRateLimited(w, decision.RetryAfter)
		return false
	}
	return true
}
