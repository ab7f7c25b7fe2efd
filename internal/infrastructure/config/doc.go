// Package config provides 12-factor configuration management for the key
// points service.
//
// Configuration is loaded from environment variables with defaults. CLI flags
// can override environment variables.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host, compression)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Storage: Data files seeding the store
//   - Widget: Global widget settings
//
// Environment Variables:
//   - PORT, HOST, HTTP_COMPRESS
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - KEYPOINTS_DATA
//   - KEYPOINTS_VIEW, KEYPOINTS_MODE, KEYPOINTS_TITLE,
//     KEYPOINTS_BUTTON_STYLE, KEYPOINTS_BUTTON_COLOR, KEYPOINTS_LIST_TYPE
package config
