// Package counter implements fixed-window request counting keyed by client IP.
//
// The window is anchored at the first request, not sliding: every request in
// the window increments a single counter, and the whole counter expires one
// window after the first hit. A client that bursts at the end of one window
// and the start of the next can briefly exceed the nominal rate. That shape
// is kept on purpose because its retry-after sums are exact under sustained
// load, which keeps well-behaved clients from thundering back in early.
package counter

import (
	"context"
	"sync"
	"time"

	"fortune-api/internal/ratelimit/models"
)

type record struct {
	count        int
	firstRequest time.Time
}

// MemoryStore counts requests per key in process memory. Expired windows are
// swept lazily on every check, so an idle store holds at most one window's
// worth of distinct keys.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	records map[string]*record
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(limit int, window time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		limit:   limit,
		window:  window,
		now:     time.Now,
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check records one request for key and reports whether it is allowed.
// The sweep, the read, and the increment happen under one lock so two
// concurrent requests can never both observe count == limit-1.
func (s *MemoryStore) Check(_ context.Context, key string) (models.Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	rec, ok := s.records[key]
	if !ok {
		s.records[key] = &record{count: 1, firstRequest: now}
		return models.Decision{Allowed: true, Limit: s.limit, Remaining: s.limit - 1}, nil
	}

	if rec.count >= s.limit {
		return models.Decision{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			RetryAfter: ceilSeconds(rec.firstRequest.Add(s.window).Sub(now)),
		}, nil
	}

	rec.count++
	return models.Decision{Allowed: true, Limit: s.limit, Remaining: s.limit - rec.count}, nil
}

// Sweep drops every record whose window closed before now.
func (s *MemoryStore) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
}

// Len reports the number of live records. Used by tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for key, rec := range s.records {
		if now.Sub(rec.firstRequest) > s.window {
			delete(s.records, key)
		}
	}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
