package server

import (
	"log/slog"
	"time"

	"github.com/echoip/echoip/pkg/ratelimiter"
	"github.com/echoip/echoip/pkg/workerpool"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for server operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIOTimeout sets the per-connection deadline covering both reads and
// writes.
func WithIOTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.ioTimeout = timeout
		}
	}
}

// WithWorkerPool sets the pool that executes connection jobs.
func WithWorkerPool(pool *workerpool.Pool) Option {
	return func(s *Server) {
		if pool != nil {
			s.pool = pool
		}
	}
}

// WithRateLimiter sets the limiter consulted before any request work.
func WithRateLimiter(limiter *ratelimiter.SlidingWindow) Option {
	return func(s *Server) {
		if limiter != nil {
			s.limiter = limiter
		}
	}
}
