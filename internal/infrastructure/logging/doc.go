// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output
//
// GinMiddleware writes one structured line per HTTP request and includes the
// request id set by the tracing middleware.
//
// Example Usage:
//
//	logger := logging.FromLevel("info", false)
//	logger.Info("Server starting", zap.String("port", "8000"))
package logging
