package ratelimiter

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// SlidingWindow limits requests per key by counting timestamps inside a
// trailing window. The whole map sits behind one mutex; the critical section
// covers only the check-and-update, never any I/O.
type SlidingWindow struct {
	mu      sync.Mutex
	windows map[string][]time.Time

	window time.Duration
	limit  int
	logger *slog.Logger

	// Observability metrics
	allowed  atomic.Int64
	rejected atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging.
type Stats struct {
	ActiveKeys int   // Current number of tracked keys
	Allowed    int64 // Total allowed decisions
	Rejected   int64 // Total rejected decisions
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithWindow sets the trailing window duration. Non-positive values keep the default.
func WithWindow(window time.Duration) Option {
	return func(sw *SlidingWindow) {
		if window > 0 {
			sw.window = window
		}
	}
}

// WithLimit sets the maximum number of accepted requests per key per window.
// Non-positive values keep the default.
func WithLimit(limit int) Option {
	return func(sw *SlidingWindow) {
		if limit > 0 {
			sw.limit = limit
		}
	}
}

// WithLogger sets the logger for internal operations.
func WithLogger(logger *slog.Logger) Option {
	return func(sw *SlidingWindow) {
		if logger != nil {
			sw.logger = logger
		}
	}
}

// New creates a sliding-window limiter with 30 requests per 60-second window
// by default.
func New(opts ...Option) *SlidingWindow {
	sw := &SlidingWindow{
		windows: make(map[string][]time.Time),
		window:  DefaultWindow,
		limit:   DefaultLimit,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(sw)
	}

	return sw
}

// Allow reports whether the request identified by key may proceed now.
// Accepted requests record their timestamp; rejected requests never occupy a
// slot. Entries older than the window are evicted lazily, only on that key's
// own next check. A panic inside the critical section fails open: denying all
// traffic over an unrelated fault is worse than bypassing the limiter.
func (sw *SlidingWindow) Allow(key string) (allow bool) {
	defer func() {
		if r := recover(); r != nil {
			sw.logger.Error("rate limiter fault, failing open",
				slog.Any("panic", r), slog.String("key", key))
			allow = true
		}
	}()

	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	timestamps := sw.windows[key]

	// Evict expired entries in place to reuse the backing array.
	live := timestamps[:0]
	for _, t := range timestamps {
		if now.Sub(t) < sw.window {
			live = append(live, t)
		}
	}

	if len(live) >= sw.limit {
		sw.windows[key] = live
		sw.rejected.Add(1)
		return false
	}

	sw.windows[key] = append(live, now)
	sw.allowed.Add(1)
	return true
}

// Stats returns a snapshot of limiter metrics. Thread-safe.
func (sw *SlidingWindow) Stats() Stats {
	sw.mu.Lock()
	activeKeys := len(sw.windows)
	sw.mu.Unlock()

	return Stats{
		ActiveKeys: activeKeys,
		Allowed:    sw.allowed.Load(),
		Rejected:   sw.rejected.Load(),
	}
}
