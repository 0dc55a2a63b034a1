// Package ratelimiter provides an in-memory sliding-window rate limiter
// keyed by an arbitrary client identity string, typically an IP address.
//
// The limiter keeps, per key, the timestamps of accepted requests inside the
// trailing window. A request is allowed while fewer than the configured limit
// of accepted timestamps remain in the window; rejected requests are never
// recorded, so a burst of rejections does not push the window forward.
//
// # Usage
//
//	limiter := ratelimiter.New(
//		ratelimiter.WithLimit(30),
//		ratelimiter.WithWindow(time.Minute),
//	)
//
//	if !limiter.Allow(clientIP) {
//		// reject with 429
//	}
//
// # Eviction and memory
//
// Expired timestamps are evicted lazily, only when their own key is checked
// again. A key that stops sending requests keeps its last window of
// timestamps in memory indefinitely. This mirrors the reference behavior and
// is an accepted tradeoff; there is no background sweep.
//
// # Failure behavior
//
// The limiter fails open: if evaluating a key panics, Allow recovers, logs,
// and reports the request as allowed. Blocking all traffic because of an
// internal fault would be worse than briefly bypassing the limit.
//
// All state is in-memory only and resets on restart. The limiter is not
// coordinated across processes.
package ratelimiter
