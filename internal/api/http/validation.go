package http

import (
	"fmt"
	"strconv"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
)

// Request size limits (in bytes)
const (
	MaxContentSize = 1 * 1024 * 1024 // 1MB - content passed through transforms
	MaxPointSize   = 4 * 1024        // 4KB - single point
	MaxPoints      = 100
)

var settingKeys = map[string]bool{
	keypoints.SettingDisplayPosition: true,
	keypoints.SettingDisplayMode:     true,
	keypoints.SettingWidgetTitle:     true,
	keypoints.SettingButtonStyle:     true,
	keypoints.SettingButtonColor:     true,
	keypoints.SettingListType:        true,
}

var overrideKeys = map[string]bool{
	keypoints.OverrideView:        true,
	keypoints.OverrideMode:        true,
	keypoints.OverrideWidgetTitle: true,
	keypoints.OverrideButtonStyle: true,
	keypoints.OverrideButtonColor: true,
	keypoints.OverrideListType:    true,
}

// parseItemID validates a positive integer item id.
func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("item id must be a positive integer, got %q", raw)
	}
	return id, nil
}

func validateContent(content string) error {
	if len(content) > MaxContentSize {
		return fmt.Errorf("content size %d bytes exceeds maximum %d bytes", len(content), MaxContentSize)
	}
	return nil
}

func validatePoints(points []string) error {
	if len(points) > MaxPoints {
		return fmt.Errorf("%d points exceeds maximum %d", len(points), MaxPoints)
	}
	for i, point := range points {
		if len(point) > MaxPointSize {
			return fmt.Errorf("point %d size %d bytes exceeds maximum %d bytes", i, len(point), MaxPointSize)
		}
	}
	return nil
}

func validateKeys(values map[string]string, allowed map[string]bool, kind string) error {
	for key := range values {
		if !allowed[key] {
			return fmt.Errorf("unknown %s key %q", kind, key)
		}
	}
	return nil
}
