package keypoints

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/keypoints/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/tracing"
)

// Global setting keys read from the settings collaborator.
const (
	SettingDisplayPosition = "display_position"
	SettingDisplayMode     = "display_mode"
	SettingWidgetTitle     = "widget_title"
	SettingButtonStyle     = "button_style"
	SettingButtonColor     = "button_color"
	SettingListType        = "list_type"
)

// Item override keys read from the override collaborator.
const (
	OverrideView        = "view"
	OverrideMode        = "mode"
	OverrideWidgetTitle = "widget_title"
	OverrideButtonStyle = "button_style"
	OverrideButtonColor = "button_color"
	OverrideListType    = "list_type"
)

// PointsReader returns the stored points of an item.
type PointsReader interface {
	Points(ctx context.Context, itemID int64) (PointList, error)
}

// SettingsReader returns a global setting, or def when it is unset.
type SettingsReader interface {
	GlobalSetting(ctx context.Context, key, def string) (string, error)
}

// OverrideReader returns per-item display overrides.
type OverrideReader interface {
	OverrideEnabled(ctx context.Context, itemID int64) (bool, error)
	Override(ctx context.Context, itemID int64, key string) (string, bool, error)
}

// ShortcodeRequest is a manual placement call.
type ShortcodeRequest struct {
	// ItemID selects the item; zero means CurrentItemID.
	ItemID        int64
	CurrentItemID int64
	// Attrs holds call-site overrides keyed by option key. Empty values are ignored.
	Attrs   map[string]string
	Content string
}

// PageContext describes the page being assembled.
type PageContext struct {
	Singular   bool
	InMainLoop bool
	Admin      bool
}

// AppendRequest is an automatic append call for an item's primary content.
type AppendRequest struct {
	ItemID  int64
	Content string
	Page    PageContext
}

// AssetRequest asks whether a page needs the widget's assets.
type AssetRequest struct {
	ItemID   int64
	Content  string
	Singular bool
}

// Service wires the resolver and renderer to the persistence collaborators.
type Service struct {
	points    PointsReader
	settings  SettingsReader
	overrides OverrideReader
	logger    *zap.Logger
	metrics   *monitoring.Metrics
}

// NewService creates a service over the given collaborators.
func NewService(points PointsReader, settings SettingsReader, overrides OverrideReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		points:    points,
		settings:  settings,
		overrides: overrides,
		logger:    logger,
	}
}

// WithMetrics adds render metrics to the service
func (s *Service) WithMetrics(metrics *monitoring.Metrics) *Service {
	s.metrics = metrics
	return s
}

// Shortcode renders the widget at an explicit placement. Call-site attributes
// take precedence over global settings.
func (s *Service) Shortcode(ctx context.Context, req ShortcodeRequest) string {
	itemID := req.ItemID
	if itemID == 0 {
		itemID = req.CurrentItemID
	}

	points := s.loadPoints(ctx, itemID)
	if len(points) == 0 {
		s.recordFallback()
		return FallbackNotice
	}

	cfg := Resolve(MapSource(req.Attrs), s.globalTier(ctx))
	s.recordRender(cfg.View, "shortcode")
	return Render(points, cfg, req.Content)
}

// AppendToContent injects the widget next to an item's content. It returns
// content unchanged outside singular main-loop pages, in admin contexts, when
// the widget is already present, or when the item has no points.
func (s *Service) AppendToContent(ctx context.Context, req AppendRequest) string {
	if !req.Page.Singular || !req.Page.InMainLoop || req.Page.Admin {
		s.recordSkip("context")
		return req.Content
	}
	if strings.Contains(req.Content, WrapperMarker) {
		s.recordSkip("present")
		return req.Content
	}

	points := s.loadPoints(ctx, req.ItemID)
	if len(points) == 0 {
		s.recordSkip("empty")
		return req.Content
	}

	cfg := Resolve(s.itemTier(ctx, req.ItemID), s.globalTier(ctx))
	s.recordRender(cfg.View, "append")
	s.log(ctx).Debug("Appending key points",
		zap.Int64("item_id", req.ItemID),
		zap.String("view", cfg.View),
		zap.Int("points", len(points)),
	)
	return Place(cfg.View, Render(points, cfg, ""), req.Content)
}

// ShouldEnqueueAssets reports whether the page will render a widget.
func (s *Service) ShouldEnqueueAssets(ctx context.Context, req AssetRequest) bool {
	if !req.Singular {
		return false
	}
	if HasShortcode(req.Content) {
		return true
	}
	return len(s.loadPoints(ctx, req.ItemID)) > 0
}

// ExpandShortcodes replaces every shortcode in content with its rendered
// output. currentItemID is used by shortcodes without an id attribute.
func (s *Service) ExpandShortcodes(ctx context.Context, currentItemID int64, content string) string {
	return replaceShortcodes(content, func(sc shortcode) string {
		return s.Shortcode(ctx, ShortcodeRequest{
			ItemID:        sc.itemID(),
			CurrentItemID: currentItemID,
			Attrs:         sc.attrs,
			Content:       sc.content,
		})
	})
}

// loadPoints returns the filtered points of an item. Read errors degrade to
// an empty list.
func (s *Service) loadPoints(ctx context.Context, itemID int64) PointList {
	if s.points == nil || itemID <= 0 {
		return nil
	}
	points, err := s.points.Points(ctx, itemID)
	if err != nil {
		s.log(ctx).Warn("Failed to read points", zap.Int64("item_id", itemID), zap.Error(err))
		return nil
	}
	return points.Filter()
}

// globalTier reads the global settings tier.
func (s *Service) globalTier(ctx context.Context) Source {
	def := DefaultConfig()
	return PartialConfig{
		View:        s.setting(ctx, SettingDisplayPosition, def.View),
		Mode:        s.setting(ctx, SettingDisplayMode, def.Mode),
		Title:       s.setting(ctx, SettingWidgetTitle, def.Title),
		ButtonStyle: s.setting(ctx, SettingButtonStyle, def.ButtonStyle),
		ButtonColor: s.setting(ctx, SettingButtonColor, def.ButtonColor),
		ListType:    s.setting(ctx, SettingListType, def.ListType),
	}
}

func (s *Service) setting(ctx context.Context, key, def string) string {
	if s.settings == nil {
		return def
	}
	v, err := s.settings.GlobalSetting(ctx, key, def)
	if err != nil {
		s.log(ctx).Warn("Failed to read setting", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// itemTier reads the item's override tier. It is empty unless the item's
// override flag is set.
func (s *Service) itemTier(ctx context.Context, itemID int64) Source {
	if s.overrides == nil {
		return PartialConfig{}
	}
	enabled, err := s.overrides.OverrideEnabled(ctx, itemID)
	if err != nil {
		s.log(ctx).Warn("Failed to read override flag", zap.Int64("item_id", itemID), zap.Error(err))
		return PartialConfig{}
	}
	if !enabled {
		return PartialConfig{}
	}
	return PartialConfig{
		View:        s.override(ctx, itemID, OverrideView),
		Mode:        s.override(ctx, itemID, OverrideMode),
		Title:       s.override(ctx, itemID, OverrideWidgetTitle),
		ButtonStyle: s.override(ctx, itemID, OverrideButtonStyle),
		ButtonColor: s.override(ctx, itemID, OverrideButtonColor),
		ListType:    s.override(ctx, itemID, OverrideListType),
	}
}

func (s *Service) override(ctx context.Context, itemID int64, key string) string {
	v, ok, err := s.overrides.Override(ctx, itemID, key)
	if err != nil {
		s.log(ctx).Warn("Failed to read override",
			zap.Int64("item_id", itemID),
			zap.String("key", key),
			zap.Error(err),
		)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

// log returns the service logger tagged with the request id, if any.
func (s *Service) log(ctx context.Context) *zap.Logger {
	if rid := tracing.RequestIDFromContext(ctx); rid != "" {
		return s.logger.With(zap.String("request_id", rid))
	}
	return s.logger
}

func (s *Service) recordRender(view, entry string) {
	if s.metrics != nil {
		s.metrics.RecordRender(view, entry)
	}
}

func (s *Service) recordFallback() {
	if s.metrics != nil {
		s.metrics.RecordFallback()
	}
}

func (s *Service) recordSkip(reason string) {
	if s.metrics != nil {
		s.metrics.RecordAppendSkip(reason)
	}
}
