// Package middleware provides HTTP middleware for the key points API.
//
// Middleware stack includes:
//   - CORS: lets any page fetch widget markup, exposes X-Request-ID
//   - RateLimit: per-IP token bucket with idle client eviction
//   - GlobalRateLimit: one bucket shared by all clients
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
