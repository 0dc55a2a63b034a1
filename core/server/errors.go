package server

import "errors"

var (
	// Startup errors
	ErrMissingAddress = errors.New("server address is required")
	ErrNilHandler     = errors.New("handler is required")
	ErrBindFailed     = errors.New("failed to bind")

	// Lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")

	// Per-connection errors
	ErrNoPeerAddress = errors.New("no peer address")
)
