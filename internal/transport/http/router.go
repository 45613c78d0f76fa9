// Package http assembles the API router: middleware chain, endpoint
// registration, and the JSON fallbacks for unknown routes and verbs.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fortune-api/internal/fortune/handler"
	"fortune-api/internal/ingest"
	"fortune-api/internal/manseryeok"
	"fortune-api/internal/platform/config"
	"fortune-api/internal/platform/health"
	"fortune-api/internal/site"
	"fortune-api/pkg/platform/httputil"
	"fortune-api/pkg/platform/middleware/cors"
	"fortune-api/pkg/platform/middleware/metadata"
	"fortune-api/pkg/platform/middleware/request"
)

const maxRequestBody = 256 << 10

// Deps collects everything the router mounts.
type Deps struct {
	Config     config.Server
	Logger     *slog.Logger
	Fortune    *handler.Handler
	Manseryeok *manseryeok.Handler
	Ingest     *ingest.Handler
	Site       *site.Handler
	Health     *health.Handler
}

// New builds the router. Middleware order matters: recovery first so panics
// anywhere below still produce a JSON body, then request identity and client
// metadata so the logger and rate limiter see the resolved client IP.
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	meta := metadata.NewMiddleware(&metadata.Config{
		TrustedProxies: deps.Config.TrustedProxies,
	})

	r.Use(request.Recovery(deps.Logger))
	r.Use(request.RequestID)
	r.Use(meta.Handler)
	r.Use(cors.Handler(cors.Config{
		AllowedOrigins: deps.Config.AllowedOrigins,
		Development:    deps.Config.IsDevelopment(),
	}))
	r.Use(request.Logger(deps.Logger))
	r.Use(request.BodyLimit(maxRequestBody))
	r.Use(request.ContentTypeJSON)
	r.Use(request.Timeout(30 * time.Second))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Envelope{
			Success: false,
			Error:   "Not found",
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteMethodNotAllowed(w)
	})

	deps.Fortune.Register(r)
	deps.Manseryeok.Register(r)
	deps.Ingest.Register(r)
	deps.Site.Register(r)
	deps.Health.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
