// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Request ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	logger := logging.NewLogger(os.Stdout, "info", "json")
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).Info("article published", slog.String("article_id", id))
package logging
