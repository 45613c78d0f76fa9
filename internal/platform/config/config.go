package config

import (
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	Environment string // "production" or "development"
	BaseURL     string

	AllowedOrigins []string
	TrustedProxies []netip.Prefix

	LLM       LLM
	RateLimit RateLimit

	// RedisURL enables the shared rate-limit counter store when set.
	// Empty means the per-instance in-memory store.
	RedisURL string

	// ManseryeokDataFile optionally points at a compact calendar JSON file.
	// When absent, ganji values are computed arithmetically.
	ManseryeokDataFile string
}

// LLM configures the generative-text provider client.
type LLM struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RateLimit configures the per-IP request window.
type RateLimit struct {
	Window      time.Duration
	MaxRequests int
}

// IsDevelopment reports whether the process runs outside production.
func (s Server) IsDevelopment() bool {
	return s.Environment == "development"
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FORTUNE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("DEPLOY_ENV")
	if env == "" {
		env = "production"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://doha.kr"
	}

	origins := []string{
		"https://doha.kr",
		"https://www.doha.kr",
	}
	if extra := os.Getenv("ADDITIONAL_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	var proxies []netip.Prefix
	for _, cidr := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if p, err := netip.ParsePrefix(cidr); err == nil {
			proxies = append(proxies, p)
		}
	}

	llmBaseURL := os.Getenv("LLM_BASE_URL")
	if llmBaseURL == "" {
		// Gemini's OpenAI-compatible endpoint.
		llmBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gemini-1.5-flash"
	}

	return Server{
		Addr:           addr,
		Environment:    env,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		AllowedOrigins: origins,
		TrustedProxies: proxies,
		LLM: LLM{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			BaseURL: llmBaseURL,
			Model:   llmModel,
			Timeout: durationFromEnv("LLM_TIMEOUT", 15*time.Second),
		},
		RateLimit: RateLimit{
			Window:      durationFromEnv("RATE_LIMIT_WINDOW", time.Minute),
			MaxRequests: intFromEnv("RATE_LIMIT_MAX", 30),
		},
		RedisURL:           os.Getenv("REDIS_URL"),
		ManseryeokDataFile: os.Getenv("MANSERYEOK_DATA_FILE"),
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func intFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
