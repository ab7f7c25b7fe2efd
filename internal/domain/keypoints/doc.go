// Package keypoints renders the key points summary widget for an item.
//
// Rendering runs in two strictly sequential steps:
//   - Resolve: merges ordered configuration tiers into an effective Config
//   - Render: builds inline or popup markup and composes it with content
//
// Configuration Tiers (highest precedence first):
//   - Manual placement: call-site attributes, then global settings
//   - Automatic append: item overrides (when enabled), then global settings
//   - Every field unresolved by any tier takes its DefaultConfig value
//
// Entry Points:
//   - Service.Shortcode: explicit placement, falls back to FallbackNotice
//   - Service.AppendToContent: automatic injection guarded by WrapperMarker
//   - Service.ShouldEnqueueAssets: asset-loading predicate
//   - Service.ExpandShortcodes: replaces [keypoints] tags in content
//
// Unrecognized view, mode and list_type values never fail; they render the
// inline, light and unordered variants respectively.
//
// Example Usage:
//
//	cfg := keypoints.Resolve(keypoints.MapSource(attrs), globals)
//	html := keypoints.Render(points, cfg, "<p>Body</p>")
package keypoints
