package ratelimiter

import "time"

const (
	// DefaultWindow is the default trailing window duration.
	DefaultWindow = 60 * time.Second

	// DefaultLimit is the default number of accepted requests per key per window.
	DefaultLimit = 30
)
