// Package http exposes the key points widget over a Gin HTTP API.
//
// Rendering Endpoints:
//   - GET  /items/:id/keypoints: manual placement, query params override
//   - POST /render/append: automatic append transform
//   - POST /render/shortcodes: expands [keypoints] tags in content
//   - POST /assets/check: asset-loading predicate
//
// Admin Endpoints:
//   - GET /items, GET /items/:id
//   - PUT /items/:id/points, PUT /items/:id/overrides
//   - GET /settings, PUT /settings
//
// Errors are returned as {"error": "..."} with status 400 or 404.
package http
