// Package logger provides structured logging built on Go's standard slog
// package: a factory with environment presets plus attribute helpers for
// common fields.
//
//	log := logger.New(logger.WithDevelopment("echoip")) // text, debug, stdout
//	log := logger.New(logger.WithProduction("echoip"))  // JSON, info, stdout
//
//	log.Info("server listening",
//		logger.Component("server"),
//		logger.ClientIP(ip),
//	)
//
// Attribute helpers follow the empty-Attr pattern: logger.Error(nil) yields
// an attribute slog silently drops, so call sites need no nil checks.
package logger
