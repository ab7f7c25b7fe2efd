package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.True(t, cfg.Server.Compress)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "ip", cfg.RateLimit.Scope)

	// No seed data and no widget settings
	assert.Empty(t, cfg.Storage.DataGlob)
	assert.Empty(t, cfg.Widget.Settings())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                   "9000",
		"HOST":                   "127.0.0.1",
		"HTTP_COMPRESS":          "false",
		"LOG_LEVEL":              "debug",
		"LOG_DEV":                "true",
		"RATE_LIMIT_RPS":         "500",
		"RATE_LIMIT_BURST":       "1000",
		"RATE_LIMIT_ENABLED":     "false",
		"KEYPOINTS_DATA":         "data/**/*.yaml",
		"KEYPOINTS_VIEW":         "popup",
		"KEYPOINTS_MODE":         "dark",
		"KEYPOINTS_TITLE":        "Highlights",
		"KEYPOINTS_BUTTON_STYLE": "rounded",
		"KEYPOINTS_BUTTON_COLOR": "#ff0000",
		"KEYPOINTS_LIST_TYPE":    "ordered",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.False(t, cfg.Server.Compress)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "data/**/*.yaml", cfg.Storage.DataGlob)

	assert.Equal(t, map[string]string{
		"display_position": "popup",
		"display_mode":     "dark",
		"widget_title":     "Highlights",
		"button_style":     "rounded",
		"button_color":     "#ff0000",
		"list_type":        "ordered",
	}, cfg.Widget.Settings())
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")

	// LoadOrDefault swallows the error
	cfg := LoadOrDefault()
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
}

func TestWidgetSettingsSkipsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		widget WidgetConfig
		want   map[string]string
	}{
		{
			name:   "empty",
			widget: WidgetConfig{},
			want:   map[string]string{},
		},
		{
			name:   "title only",
			widget: WidgetConfig{Title: "Summary"},
			want:   map[string]string{"widget_title": "Summary"},
		},
		{
			name:   "view and list type",
			widget: WidgetConfig{View: "below", ListType: "ordered"},
			want:   map[string]string{"display_position": "below", "list_type": "ordered"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.widget.Settings())
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{name: "default values", wantLevel: "info"},
		{name: "debug level", level: "debug", wantLevel: "debug"},
		{name: "development mode", dev: "true", wantLevel: "info", wantDev: true},
		{name: "error level production", level: "error", dev: "false", wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.level != "" {
				t.Setenv("LOG_LEVEL", tt.level)
			}
			if tt.dev != "" {
				t.Setenv("LOG_DEV", tt.dev)
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}
