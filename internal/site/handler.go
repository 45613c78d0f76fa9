// Package site serves the generated sitemap and robots.txt for the static
// front end. Output depends only on configuration, so both endpoints carry a
// long public cache lifetime.
package site

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// sitePaths lists the indexable pages of the front end, in the order they
// appear in the sitemap.
var sitePaths = []string{
	"/",
	"/fortune/",
	"/fortune/daily/",
	"/fortune/saju/",
	"/fortune/tarot/",
	"/fortune/zodiac/",
	"/fortune/zodiac-animal/",
	"/tests/",
	"/tests/mbti/",
	"/tests/love-dna/",
	"/tests/teto-egen/",
	"/tools/",
	"/tools/bmi/",
	"/tools/salary/",
	"/tools/text-counter/",
	"/about/",
	"/contact/",
	"/privacy/",
	"/terms/",
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type Handler struct {
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

func New(baseURL string, logger *slog.Logger) *Handler {
	return &Handler{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
		now:     time.Now,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/sitemap", h.handleSitemap)
	r.Get("/api/robots", h.handleRobots)
}

func (h *Handler) handleSitemap(w http.ResponseWriter, r *http.Request) {
	lastMod := h.now().Format("2006-01-02")
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(sitePaths)),
	}
	for _, path := range sitePaths {
		priority := "0.8"
		if path == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:        h.baseURL + path,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.logger.ErrorContext(r.Context(), "sitemap encoding failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func (h *Handler) handleRobots(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", h.baseURL)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.String()))
}
