package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
)

const yamlData = `settings:
  display_position: below
  widget_title: Highlights
items:
  - id: 42
    points:
      - Fast
      - ""
      - Reliable
    override_settings: true
    overrides:
      view: popup
      list_type: ordered
`

const tomlData = `[settings]
display_position = "below"
widget_title = "Highlights"

[[items]]
id = 42
points = ["Fast", "", "Reliable"]
override_settings = true

[items.overrides]
view = "popup"
list_type = "ordered"
`

const jsonData = `{
  "settings": {"display_position": "below", "widget_title": "Highlights"},
  "items": [
    {
      "id": 42,
      "points": ["Fast", "", "Reliable"],
      "override_settings": true,
      "overrides": {"view": "popup", "list_type": "ordered"}
    }
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "data.yaml", yamlData},
		{"yml", "data.yml", yamlData},
		{"toml", "data.toml", tomlData},
		{"json", "data.json", jsonData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			store := NewStore()
			require.NoError(t, store.LoadFile(path))

			assert.Equal(t, map[string]string{
				"display_position": "below",
				"widget_title":     "Highlights",
			}, store.GlobalSettings())

			points, err := store.Points(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, keypoints.PointList{"Fast", "", "Reliable"}, points)

			enabled, _ := store.OverrideEnabled(ctx, 42)
			assert.True(t, enabled)
			view, ok, _ := store.Override(ctx, 42, "view")
			assert.True(t, ok)
			assert.Equal(t, "popup", view)
		})
	}
}

func TestParseDataErrors(t *testing.T) {
	_, err := ParseData("data.ini", []byte("x=1"))
	assert.ErrorContains(t, err, "unsupported data file format")

	_, err = ParseData("data.json", []byte("{not json"))
	assert.ErrorContains(t, err, "failed to decode")

	_, err = ParseData("data.yaml", []byte("items:\n  - id: 0\n"))
	assert.ErrorContains(t, err, "item id must be positive")
}

func TestLoadFileMissing(t *testing.T) {
	err := NewStore().LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read data file")
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/base.yaml", "settings:\n  widget_title: Base\nitems:\n  - id: 1\n    points: [One]\n")
	writeFile(t, dir, "b/nested/override.yaml", "settings:\n  widget_title: Nested\nitems:\n  - id: 2\n    points: [Two]\n")
	writeFile(t, dir, "ignored.txt", "not data")

	store := NewStore()
	loaded, err := store.LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, 2, store.Len())

	// Files apply in lexical order, so b/ wins over a/
	title, _ := store.GlobalSetting(context.Background(), "widget_title", "")
	assert.Equal(t, "Nested", title)
}

func TestLoadGlobNoMatches(t *testing.T) {
	store := NewStore()
	loaded, err := store.LoadGlob(filepath.Join(t.TempDir(), "*.yaml"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
