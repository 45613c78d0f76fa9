package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	fortunehandler "fortune-api/internal/fortune/handler"
	"fortune-api/internal/fortune/service"
	"fortune-api/internal/ingest"
	"fortune-api/internal/llm"
	"fortune-api/internal/manseryeok"
	"fortune-api/internal/platform/config"
	"fortune-api/internal/platform/health"
	"fortune-api/internal/platform/httpserver"
	"fortune-api/internal/platform/logger"
	"fortune-api/internal/platform/metrics"
	"fortune-api/internal/platform/redis"
	"fortune-api/internal/ratelimit"
	"fortune-api/internal/ratelimit/store/counter"
	"fortune-api/internal/site"
	httptransport "fortune-api/internal/transport/http"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal service packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	log.Info("initializing fortune-api",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"rate_limit", cfg.RateLimit.MaxRequests,
		"rate_window", cfg.RateLimit.Window.String(),
	)

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}

	var store ratelimit.Store
	if redisClient != nil {
		store = counter.NewRedisStore(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		log.Info("rate limiting backed by redis")
	} else {
		// Per-instance counting: approximate across a fleet, exact within
		// one process.
		store = counter.NewMemoryStore(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}
	guard := ratelimit.NewGuard(store, log, m)

	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, log, m)

	manStore, err := manseryeok.LoadFileStore(cfg.ManseryeokDataFile)
	if err != nil {
		log.Error("manseryeok data load failed", "error", err, "path", cfg.ManseryeokDataFile)
		os.Exit(1)
	}
	if manStore != nil {
		log.Info("manseryeok data file loaded", "years", manStore.Len())
	}

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("llm_api_key", func() error {
		if cfg.LLM.APIKey == "" {
			return errors.New("GEMINI_API_KEY not configured")
		}
		return nil
	})
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
	}

	router := httptransport.New(httptransport.Deps{
		Config:     cfg,
		Logger:     log,
		Fortune:    fortunehandler.New(service.New(llmClient, log, m), guard, log),
		Manseryeok: manseryeok.NewHandler(manseryeok.NewService(manStore, log, m), log),
		Ingest:     ingest.New(log, m),
		Site:       site.New(cfg.BaseURL, log),
		Health:     healthHandler,
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if redisClient != nil {
			defer func() { _ = redisClient.Close() }()
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
