// Package tracing correlates HTTP requests with their log lines.
//
// HTTPMiddleware assigns each request a prefixed ULID, echoes it in the
// X-Request-ID response header and stores it in both the gin context (for
// the logging middleware) and the request context (for handlers).
package tracing
