package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	Widget    WidgetConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port     string `envconfig:"PORT" default:"8000"`
	Host     string `envconfig:"HOST" default:"0.0.0.0"`
	Compress bool   `envconfig:"HTTP_COMPRESS" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`

	// Scope is "ip" for per-client buckets or "global" for one shared bucket.
	Scope string `envconfig:"RATE_LIMIT_SCOPE" default:"ip"`
}

// StorageConfig holds the data files used to seed the store.
type StorageConfig struct {
	// DataGlob is a doublestar pattern, e.g. "data/**/*.yaml". Empty means no seed.
	DataGlob string `envconfig:"KEYPOINTS_DATA"`
}

// WidgetConfig holds global widget settings. Empty values leave the
// hardcoded widget defaults in place.
type WidgetConfig struct {
	View        string `envconfig:"KEYPOINTS_VIEW"`
	Mode        string `envconfig:"KEYPOINTS_MODE"`
	Title       string `envconfig:"KEYPOINTS_TITLE"`
	ButtonStyle string `envconfig:"KEYPOINTS_BUTTON_STYLE"`
	ButtonColor string `envconfig:"KEYPOINTS_BUTTON_COLOR"`
	ListType    string `envconfig:"KEYPOINTS_LIST_TYPE"`
}

// Settings returns the non-empty widget values keyed by global setting key.
func (w WidgetConfig) Settings() map[string]string {
	out := make(map[string]string)
	for key, value := range map[string]string{
		"display_position": w.View,
		"display_mode":     w.Mode,
		"widget_title":     w.Title,
		"button_style":     w.ButtonStyle,
		"button_color":     w.ButtonColor,
		"list_type":        w.ListType,
	} {
		if value != "" {
			out[key] = value
		}
	}
	return out
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8000",
			Host:     "0.0.0.0",
			Compress: true,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
			Scope:             "ip",
		},
	}
}
