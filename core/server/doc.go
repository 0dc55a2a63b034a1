// Package server is the concurrent connection-handling substrate: a TCP
// acceptor feeding a fixed-size worker pool, with a per-client sliding-window
// rate limiter consulted before any request work.
//
// One accepted connection becomes one job. Its worker runs a strictly
// sequential pipeline: set the I/O deadline, derive the client key from the
// transport peer address, rate-check (rejections get a 429 and close), frame
// the request, route it, write the single response, close. No connection is
// ever served twice; there is no keep-alive.
//
// Error containment follows a strict taxonomy: a bind failure at startup is
// the only fatal error (Start returns it; the process is expected to abort);
// every per-connection failure abandons just that connection; a panic while
// handling a job is recovered at the job boundary so pool capacity never
// shrinks.
//
//	s, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil { ... }
//	eg.Go(s.Run(ctx, router.Dispatch))
package server
