// Package ingest implements the fire-and-forget intake endpoints: CSP
// violation reports and client-side log batches. Both endpoints acknowledge
// the caller no matter what happens internally; the browser is never made to
// care that logging failed.
package ingest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mssola/useragent"

	"fortune-api/pkg/requestcontext"
)

const maxBodyBytes = 64 << 10

// EventCounter records accepted events per kind. Satisfied by
// metrics.Metrics.
type EventCounter interface {
	IncrementIngestEvents(kind string)
}

type Handler struct {
	logger  *slog.Logger
	metrics EventCounter
}

func New(logger *slog.Logger, metrics EventCounter) *Handler {
	return &Handler{logger: logger, metrics: metrics}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/csp-report", h.handleCSPReport)
	r.Post("/api/logs", h.handleLogs)
}

// cspReport is the browser's report-uri payload.
type cspReport struct {
	Report struct {
		DocumentURI        string `json:"document-uri"`
		ViolatedDirective  string `json:"violated-directive"`
		EffectiveDirective string `json:"effective-directive"`
		BlockedURI         string `json:"blocked-uri"`
		SourceFile         string `json:"source-file"`
		LineNumber         int    `json:"line-number"`
	} `json:"csp-report"`
}

func (h *Handler) handleCSPReport(w http.ResponseWriter, r *http.Request) {
	defer drain(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err == nil && len(body) > 0 {
		var report cspReport
		if json.Unmarshal(body, &report) == nil && report.Report.ViolatedDirective != "" {
			h.logger.WarnContext(r.Context(), "csp violation",
				slog.String("document_uri", report.Report.DocumentURI),
				slog.String("violated_directive", report.Report.ViolatedDirective),
				slog.String("blocked_uri", report.Report.BlockedURI),
				slog.String("source_file", report.Report.SourceFile),
				slog.Int("line", report.Report.LineNumber))
			if h.metrics != nil {
				h.metrics.IncrementIngestEvents("csp_report")
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// logEntry is one client log line. Unknown fields are ignored.
type logEntry struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Page    string         `json:"page"`
	Context map[string]any `json:"context"`
}

type logBatch struct {
	Entries []logEntry `json:"entries"`
}

func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	defer drain(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	var batch logBatch
	if json.Unmarshal(body, &batch) != nil || len(batch.Entries) == 0 {
		// Some clients send a single bare entry instead of a batch.
		var single logEntry
		if json.Unmarshal(body, &single) != nil || single.Message == "" {
			w.WriteHeader(http.StatusOK)
			return
		}
		batch.Entries = []logEntry{single}
	}

	browser, browserVersion, osName := describeClient(requestcontext.UserAgent(r.Context()))
	for _, entry := range batch.Entries {
		h.logger.LogAttrs(r.Context(), clientLevel(entry.Level), "client log",
			slog.String("message", entry.Message),
			slog.String("page", entry.Page),
			slog.String("client_level", entry.Level),
			slog.String("browser", browser),
			slog.String("browser_version", browserVersion),
			slog.String("os", osName),
			slog.Any("context", entry.Context))
	}
	if h.metrics != nil {
		h.metrics.IncrementIngestEvents("client_log")
	}

	w.WriteHeader(http.StatusOK)
}

// describeClient parses the user agent string into coarse browser/OS labels.
func describeClient(ua string) (browser, version, osName string) {
	if ua == "" {
		return "unknown", "", "unknown"
	}
	parsed := useragent.New(ua)
	browser, version = parsed.Browser()
	if browser == "" {
		browser = "unknown"
	}
	osName = parsed.OS()
	if osName == "" {
		osName = "unknown"
	}
	return browser, version, osName
}

// clientLevel maps the client's level string onto slog levels. Anything
// unrecognized lands at info.
func clientLevel(level string) slog.Level {
	switch level {
	case "error", "fatal":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func drain(r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}
