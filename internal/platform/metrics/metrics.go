package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	FortuneRequests     *prometheus.CounterVec
	FortuneLatency      *prometheus.HistogramVec
	LLMCalls            *prometheus.CounterVec
	LLMLatency          prometheus.Histogram
	RateLimitRejections prometheus.Counter
	ManseryeokLookups   *prometheus.CounterVec
	IngestEvents        *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FortuneRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortune_requests_total",
			Help: "Total number of fortune requests, labeled by type and outcome",
		}, []string{"type", "status"}),
		FortuneLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fortune_generation_latency_seconds",
			Help:    "Latency of fortune generation, labeled by type",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		LLMCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortune_llm_calls_total",
			Help: "Total number of upstream LLM calls, labeled by outcome",
		}, []string{"status"}),
		LLMLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fortune_llm_latency_seconds",
			Help:    "Latency of upstream LLM calls in seconds",
			Buckets: []float64{0.5, 1, 2, 4, 8, 15},
		}),
		RateLimitRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fortune_ratelimit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
		ManseryeokLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortune_manseryeok_lookups_total",
			Help: "Total number of calendar lookups, labeled by outcome",
		}, []string{"status"}),
		IngestEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortune_ingest_events_total",
			Help: "Total number of ingested client events, labeled by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncrementFortuneRequests(fortuneType, status string) {
	m.FortuneRequests.WithLabelValues(fortuneType, status).Inc()
}

func (m *Metrics) ObserveFortuneLatency(fortuneType string, seconds float64) {
	m.FortuneLatency.WithLabelValues(fortuneType).Observe(seconds)
}

func (m *Metrics) IncrementLLMCalls(status string) {
	m.LLMCalls.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveLLMLatency(seconds float64) {
	m.LLMLatency.Observe(seconds)
}

func (m *Metrics) IncrementRateLimitRejections() {
	m.RateLimitRejections.Inc()
}

func (m *Metrics) IncrementManseryeokLookups(status string) {
	m.ManseryeokLookups.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementIngestEvents(kind string) {
	m.IngestEvents.WithLabelValues(kind).Inc()
}
