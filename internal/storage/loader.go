package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// DataFile is the on-disk seed format shared by YAML, TOML and JSON files.
type DataFile struct {
	Settings map[string]string `yaml:"settings" toml:"settings" json:"settings"`
	Items    []DataItem        `yaml:"items" toml:"items" json:"items"`
}

// DataItem is one item in a data file.
type DataItem struct {
	ID               int64             `yaml:"id" toml:"id" json:"id"`
	Points           []string          `yaml:"points" toml:"points" json:"points"`
	OverrideSettings bool              `yaml:"override_settings" toml:"override_settings" json:"override_settings"`
	Overrides        map[string]string `yaml:"overrides" toml:"overrides" json:"overrides"`
}

// ParseData decodes a data file. The format is chosen by extension:
// .yaml/.yml, .toml or .json.
func ParseData(name string, data []byte) (*DataFile, error) {
	var df DataFile
	var err error

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &df)
	case ".toml":
		err = toml.Unmarshal(data, &df)
	case ".json":
		err = sonic.Unmarshal(data, &df)
	default:
		return nil, fmt.Errorf("unsupported data file format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	for _, item := range df.Items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("%s: item id must be positive, got %d", name, item.ID)
		}
	}
	return &df, nil
}

// Apply writes a data file into the store. Later files override earlier ones
// item by item and setting by setting.
func (s *Store) Apply(df *DataFile) {
	for key, value := range df.Settings {
		s.SetGlobalSetting(key, value)
	}
	for _, item := range df.Items {
		s.SetPoints(item.ID, item.Points)
		s.SetOverrides(item.ID, item.OverrideSettings, item.Overrides)
	}
}

// LoadFile reads a data file into the store.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}
	df, err := ParseData(path, data)
	if err != nil {
		return err
	}
	s.Apply(df)
	return nil
}

// LoadGlob loads every file matching a doublestar pattern, in lexical order,
// and returns the loaded paths.
func (s *Store) LoadGlob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid data pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		if err := s.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return matches, nil
}
