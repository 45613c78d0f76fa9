// Package llm talks to the chat completion provider used for generated
// fortune readings. The provider speaks the OpenAI chat API, so the Gemini
// endpoint is reached through its OpenAI-compatible surface and the backing
// model stays a configuration detail.
package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	dErrors "fortune-api/pkg/domain-errors"
)

// Client produces one completion for one prompt. Implementations must be
// safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LatencyRecorder receives per-call outcome and latency. Satisfied by
// metrics.Metrics.
type LatencyRecorder interface {
	IncrementLLMCalls(status string)
	ObserveLLMLatency(seconds float64)
}

// Config holds provider connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIClient is the production Client. Provider error detail is logged
// here and never propagated; callers only see domain error codes.
type OpenAIClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
	metrics LatencyRecorder
}

func NewOpenAIClient(cfg Config, logger *slog.Logger, metrics LatencyRecorder) *OpenAIClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	return &OpenAIClient{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	elapsed := time.Since(start)

	if c.metrics != nil {
		c.metrics.ObserveLLMLatency(elapsed.Seconds())
	}

	if err != nil {
		status := "error"
		code := dErrors.CodeUpstreamError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			status = "timeout"
			code = dErrors.CodeUpstreamTimeout
		}
		if c.metrics != nil {
			c.metrics.IncrementLLMCalls(status)
		}
		c.logger.ErrorContext(ctx, "llm completion failed",
			slog.String("model", c.model),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return "", dErrors.New(code, "completion request failed")
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		if c.metrics != nil {
			c.metrics.IncrementLLMCalls("empty")
		}
		c.logger.ErrorContext(ctx, "llm returned empty completion",
			slog.String("model", c.model))
		return "", dErrors.New(dErrors.CodeUpstreamError, "empty completion")
	}

	if c.metrics != nil {
		c.metrics.IncrementLLMCalls("ok")
	}
	return resp.Choices[0].Message.Content, nil
}
