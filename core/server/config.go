package server

import (
	"time"

	"github.com/echoip/echoip/pkg/ratelimiter"
	"github.com/echoip/echoip/pkg/workerpool"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Server address
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Per-connection I/O deadline covering both reads and writes
	IOTimeout time.Duration `env:"SERVER_IO_TIMEOUT" envDefault:"5s"`

	// Worker pool size; 0 selects the default based on detected parallelism
	Workers int `env:"SERVER_WORKERS" envDefault:"0"`

	// Rate limiting
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"30"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}

// DefaultConfig returns a Config with the reference defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		IOTimeout:         DefaultIOTimeout,
		RateLimitRequests: ratelimiter.DefaultLimit,
		RateLimitWindow:   ratelimiter.DefaultWindow,
	}
}

// NewFromConfig creates a Server from configuration. Additional options can
// override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	configOpts := make([]Option, 0, len(opts)+2)

	if cfg.IOTimeout > 0 {
		configOpts = append(configOpts, WithIOTimeout(cfg.IOTimeout))
	}

	// User-provided options follow the config-driven ones so they can
	// override them.
	configOpts = append(configOpts, opts...)

	// Pool and limiter from config fill in last, and only what the caller
	// left unset: both spawn state on construction, so they must not be
	// built just to be replaced.
	configOpts = append(configOpts, func(s *Server) {
		if s.pool == nil {
			s.pool = workerpool.New(cfg.Workers, workerpool.WithLogger(s.logger))
		}
		if s.limiter == nil {
			s.limiter = ratelimiter.New(
				ratelimiter.WithLimit(cfg.RateLimitRequests),
				ratelimiter.WithWindow(cfg.RateLimitWindow),
				ratelimiter.WithLogger(s.logger),
			)
		}
	})

	return New(cfg.Addr, configOpts...), nil
}
