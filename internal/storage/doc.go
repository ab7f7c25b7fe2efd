// Package storage provides the persistence collaborator for the key points
// widget: item points, per-item display overrides and global settings.
//
// Store is an in-memory, concurrency-safe implementation of the
// keypoints.PointsReader, keypoints.SettingsReader and
// keypoints.OverrideReader contracts. Points written through it have all
// markup stripped with bluemonday's strict policy.
//
// Seeding:
//   - YAML (.yaml, .yml): goccy/go-yaml
//   - TOML (.toml): pelletier/go-toml/v2
//   - JSON (.json): bytedance/sonic
//   - LoadGlob expands doublestar patterns such as "data/**/*.yaml"
//
// Example data file:
//
//	settings:
//	  display_position: below
//	items:
//	  - id: 42
//	    points: ["Fast", "Reliable"]
//	    override_settings: true
//	    overrides:
//	      view: popup
package storage
