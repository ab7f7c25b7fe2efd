package storage

import (
	"context"
	"errors"
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
)

// ErrNotFound is returned for unknown items.
var ErrNotFound = errors.New("item not found")

// Item is a snapshot of one item's widget data.
type Item struct {
	ID              int64             `json:"id"`
	Points          []string          `json:"points"`
	OverrideEnabled bool              `json:"override_settings"`
	Overrides       map[string]string `json:"overrides"`
}

// Store is an in-memory persistence layer for points, item overrides and
// global settings. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	items    map[int64]*Item
	settings map[string]string
	policy   *bluemonday.Policy
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items:    make(map[int64]*Item),
		settings: make(map[string]string),
		policy:   bluemonday.StrictPolicy(),
	}
}

// Points implements keypoints.PointsReader. Unknown items have no points.
func (s *Store) Points(_ context.Context, itemID int64) (keypoints.PointList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	return append(keypoints.PointList(nil), item.Points...), nil
}

// GlobalSetting implements keypoints.SettingsReader.
func (s *Store) GlobalSetting(_ context.Context, key, def string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.settings[key]; ok {
		return v, nil
	}
	return def, nil
}

// OverrideEnabled implements keypoints.OverrideReader.
func (s *Store) OverrideEnabled(_ context.Context, itemID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	return ok && item.OverrideEnabled, nil
}

// Override implements keypoints.OverrideReader.
func (s *Store) Override(_ context.Context, itemID int64, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return "", false, nil
	}
	v, ok := item.Overrides[key]
	return v, ok, nil
}

// SetPoints replaces an item's points. Markup is stripped from every point;
// order and blank entries are kept.
func (s *Store) SetPoints(itemID int64, points []string) {
	clean := make([]string, len(points))
	for i, point := range points {
		clean[i] = s.sanitize(point)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.item(itemID).Points = clean
}

// SetOverrides replaces an item's override values and flag.
func (s *Store) SetOverrides(itemID int64, enabled bool, overrides map[string]string) {
	copied := make(map[string]string, len(overrides))
	for k, v := range overrides {
		copied[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.item(itemID)
	item.OverrideEnabled = enabled
	item.Overrides = copied
}

// SetGlobalSetting stores a global setting. An empty value removes it.
func (s *Store) SetGlobalSetting(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == "" {
		delete(s.settings, key)
		return
	}
	s.settings[key] = value
}

// GlobalSettings returns a copy of all global settings.
func (s *Store) GlobalSettings() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.settings))
	for k, v := range s.settings {
		out[k] = v
	}
	return out
}

// Item returns a snapshot of one item.
func (s *Store) Item(itemID int64) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return Item{}, ErrNotFound
	}
	return item.clone(), nil
}

// Items returns snapshots of all items ordered by id.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// item returns the item for id, creating it. Caller holds the write lock.
func (s *Store) item(itemID int64) *Item {
	item, ok := s.items[itemID]
	if !ok {
		item = &Item{ID: itemID, Overrides: map[string]string{}}
		s.items[itemID] = item
	}
	return item
}

// sanitize strips markup and decodes the entities bluemonday escapes, since
// the renderer escapes on output.
func (s *Store) sanitize(point string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(point)))
}

func (i *Item) clone() Item {
	c := Item{
		ID:              i.ID,
		Points:          append([]string{}, i.Points...),
		OverrideEnabled: i.OverrideEnabled,
		Overrides:       make(map[string]string, len(i.Overrides)),
	}
	for k, v := range i.Overrides {
		c.Overrides[k] = v
	}
	return c
}
