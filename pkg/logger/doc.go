// Package logger provides a factory for configured slog.Logger instances
// plus helper attribute constructors used across the service.
//
// New creates a *slog.Logger configured by functional options:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelInfo),
//		logger.WithAttr(slog.String("service", "formgate")),
//	)
//
// NewFromConfig builds a logger from environment-driven Config, which is the
// form used by cmd/server.
package logger
