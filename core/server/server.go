package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/echoip/echoip/core/logger"
	"github.com/echoip/echoip/core/wire"
	"github.com/echoip/echoip/pkg/ratelimiter"
	"github.com/echoip/echoip/pkg/workerpool"
)

// Server owns the listening socket and dispatches accepted connections to a
// worker pool. The accept loop never performs request work itself. Safe for
// concurrent use.
type Server struct {
	mu        sync.RWMutex
	addr      string
	listener  net.Listener
	logger    *slog.Logger
	pool      *workerpool.Pool
	limiter   *ratelimiter.SlidingWindow
	ioTimeout time.Duration
	running   bool
}

// New creates a Server with the given address and options. By default it has
// an auto-sized worker pool, a 30-requests-per-minute limiter, a 5-second
// per-connection I/O timeout, and a no-op logger.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:      addr,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		ioTimeout: DefaultIOTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.pool == nil {
		s.pool = workerpool.New(0, workerpool.WithLogger(s.logger))
	}
	if s.limiter == nil {
		s.limiter = ratelimiter.New(ratelimiter.WithLogger(s.logger))
	}

	return s
}

// Start binds the listener and serves connections until the context is
// canceled or the listener fails. A bind failure is returned to the caller:
// it is the only startup-fatal error in the system, and the process is
// expected to abort on it with a diagnostic. Returns context.Err() when the
// context is canceled. Use Stop() for shutdown.
func (s *Server) Start(ctx context.Context, handler wire.Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w %s: %v", ErrBindFailed, s.addr, err)
	}
	s.listener = ln
	s.running = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "server listening",
		logger.Component("server"), slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		if err := s.acceptLoop(ln, handler); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// acceptLoop accepts until the listener closes. Transient accept failures are
// logged and skipped; they never terminate the loop.
func (s *Server) acceptLoop(ln net.Listener, handler wire.Handler) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn("accept failed",
				logger.Component("server"), logger.Error(err))
			continue
		}

		s.pool.Submit(func() {
			s.handle(conn, handler)
		})
	}
}

// handle serves exactly one connection: rate-check, frame, route, respond,
// close, strictly in that order. Every I/O failure abandons the connection
// silently; nothing here may take down the worker or the process.
func (s *Server) handle(conn net.Conn, handler wire.Handler) {
	defer conn.Close()

	connID := uuid.NewString()

	// One deadline bounds all reads and writes on this connection. A stalled
	// peer is abandoned once it fires.
	if err := conn.SetDeadline(time.Now().Add(s.ioTimeout)); err != nil {
		return
	}

	peer, err := peerIP(conn)
	if err != nil {
		s.logger.Debug("unavailable peer address, dropping connection",
			logger.ConnID(connID), logger.Error(err))
		return
	}

	// The limiter keys on the transport peer, never on a forwarded header.
	if !s.limiter.Allow(peer) {
		s.logger.Info("rate limit exceeded",
			logger.ConnID(connID), logger.ClientIP(peer))
		_ = wire.WriteResponse(conn, wire.Text(wire.StatusTooManyRequests, "rate limit exceeded"))

		// The rejected request was never read off the socket. Closing with
		// unread bytes pending sends RST, which discards the in-flight 429
		// on the client side. Half-close and drain, bounded by the
		// connection deadline, so the close is a clean FIN.
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.CloseWrite()
		}
		_, _ = io.Copy(io.Discard, conn)
		return
	}

	raw, err := wire.ReadRequest(conn)
	if err != nil {
		s.logger.Debug("read failed, abandoning connection",
			logger.ConnID(connID), logger.ClientIP(peer), logger.Error(err))
		return
	}
	if len(raw) == 0 {
		return
	}

	req := wire.ParseRequest(raw, peer)
	resp := handler(req)

	if err := wire.WriteResponse(conn, resp); err != nil {
		s.logger.Debug("write failed, abandoning connection",
			logger.ConnID(connID), logger.ClientIP(peer), logger.Error(err))
		return
	}

	s.logger.Debug("request served",
		logger.ConnID(connID),
		logger.ClientIP(peer),
		logger.Method(req.Method),
		logger.Path(req.Path),
		logger.Status(resp.Status),
		logger.BytesIn(int64(len(raw))),
	)
}

// Stop closes the listener. In-flight connections finish on their own; the
// worker pool keeps running for the process lifetime. Returns immediately if
// the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.listener == nil {
		return nil
	}

	s.logger.Info("shutting down server", logger.Component("server"))

	err := s.listener.Close()
	s.running = false

	if err != nil {
		s.logger.Error("listener close error", logger.Error(err))
		return err
	}
	return nil
}

// Addr returns the listener's address once the server is running, or nil.
// Useful when binding to an ephemeral port.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the server, monitors context cancellation,
// and closes the listener when the context is canceled.
func (s *Server) Run(ctx context.Context, handler wire.Handler) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx, handler)
		}()

		select {
		case <-ctx.Done():
			if stopErr := s.Stop(); stopErr != nil {
				s.logger.Error("failed to stop server during context cancellation", logger.Error(stopErr))
			}
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// peerIP extracts the transport-layer peer IP, the identity the rate limiter
// buckets on.
func peerIP(conn net.Conn) (string, error) {
	addr := conn.RemoteAddr()
	if addr == nil {
		return "", ErrNoPeerAddress
	}

	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoPeerAddress, err)
	}
	return host, nil
}
