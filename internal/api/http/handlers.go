package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/keypoints/internal/shared/hash"
	"github.com/GriffinCanCode/keypoints/internal/storage"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	service *keypoints.Service
	store   *storage.Store
	metrics *monitoring.Metrics
	hasher  *hash.Hasher
	logger  *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(service *keypoints.Service, store *storage.Store, metrics *monitoring.Metrics, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		service: service,
		store:   store,
		metrics: metrics,
		hasher:  hash.DefaultHasher(),
		logger:  logger,
	}
}

// Register mounts all routes on the router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Rendering
	router.GET("/items/:id/keypoints", h.RenderItem)
	router.POST("/render/append", h.AppendContent)
	router.POST("/render/shortcodes", h.ExpandShortcodes)
	router.POST("/assets/check", h.CheckAssets)

	// Item admin
	router.GET("/items", h.ListItems)
	router.GET("/items/:id", h.GetItem)
	router.PUT("/items/:id/points", h.PutPoints)
	router.PUT("/items/:id/overrides", h.PutOverrides)

	// Global settings
	router.GET("/settings", h.GetSettings)
	router.PUT("/settings", h.PutSettings)

	// Metrics
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
		router.GET("/metrics/json", h.MetricsJSON)
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Key Points Widget Service",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  gin.H{"items": h.store.Len()},
	})
}

// RenderItem renders an item's widget at an explicit placement. Query
// parameters act as call-site overrides. Responses carry an ETag and honor
// If-None-Match.
func (h *Handlers) RenderItem(c *gin.Context) {
	itemID, err := parseItemID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	attrs := make(map[string]string)
	for _, key := range []string{
		keypoints.KeyView,
		keypoints.KeyMode,
		keypoints.KeyTitle,
		keypoints.KeyButtonStyle,
		keypoints.KeyButtonColor,
		keypoints.KeyListType,
	} {
		if v := c.Query(key); v != "" {
			attrs[key] = v
		}
	}

	out := h.service.Shortcode(c.Request.Context(), keypoints.ShortcodeRequest{
		ItemID: itemID,
		Attrs:  attrs,
	})

	etag := h.hasher.ETag(out)
	c.Header("ETag", etag)
	if hash.MatchesETag(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// AppendRequest is the body of POST /render/append
type AppendRequest struct {
	ItemID   int64  `json:"item_id" binding:"required,gt=0"`
	Content  string `json:"content"`
	Singular bool   `json:"singular"`
	InLoop   bool   `json:"in_loop"`
	Admin    bool   `json:"admin"`
}

// AppendContent runs the automatic append transform
func (h *Handlers) AppendContent(c *gin.Context) {
	var req AppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validateContent(req.Content); err != nil {
		badRequest(c, err)
		return
	}

	out := h.service.AppendToContent(c.Request.Context(), keypoints.AppendRequest{
		ItemID:  req.ItemID,
		Content: req.Content,
		Page: keypoints.PageContext{
			Singular:   req.Singular,
			InMainLoop: req.InLoop,
			Admin:      req.Admin,
		},
	})
	c.JSON(http.StatusOK, gin.H{"html": out})
}

// ContentRequest is the body of POST /render/shortcodes and POST /assets/check
type ContentRequest struct {
	ItemID   int64  `json:"item_id" binding:"required,gt=0"`
	Content  string `json:"content"`
	Singular bool   `json:"singular"`
}

// ExpandShortcodes replaces shortcodes in content
func (h *Handlers) ExpandShortcodes(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validateContent(req.Content); err != nil {
		badRequest(c, err)
		return
	}

	out := h.service.ExpandShortcodes(c.Request.Context(), req.ItemID, req.Content)
	c.JSON(http.StatusOK, gin.H{"html": out})
}

// CheckAssets answers whether a page needs the widget assets
func (h *Handlers) CheckAssets(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validateContent(req.Content); err != nil {
		badRequest(c, err)
		return
	}

	enqueue := h.service.ShouldEnqueueAssets(c.Request.Context(), keypoints.AssetRequest{
		ItemID:   req.ItemID,
		Content:  req.Content,
		Singular: req.Singular,
	})
	c.JSON(http.StatusOK, gin.H{"enqueue": enqueue})
}

// ListItems lists all stored items
func (h *Handlers) ListItems(c *gin.Context) {
	items := h.store.Items()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetItem returns one stored item
func (h *Handlers) GetItem(c *gin.Context) {
	itemID, err := parseItemID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.store.Item(itemID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PointsRequest is the body of PUT /items/:id/points
type PointsRequest struct {
	Points []string `json:"points"`
}

// PutPoints replaces an item's points
func (h *Handlers) PutPoints(c *gin.Context) {
	itemID, err := parseItemID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validatePoints(req.Points); err != nil {
		badRequest(c, err)
		return
	}

	h.store.SetPoints(itemID, req.Points)
	h.updateStoreGauge()
	h.logger.Info("Points updated", zap.Int64("item_id", itemID), zap.Int("count", len(req.Points)))

	item, _ := h.store.Item(itemID)
	c.JSON(http.StatusOK, item)
}

// OverridesRequest is the body of PUT /items/:id/overrides
type OverridesRequest struct {
	OverrideSettings bool              `json:"override_settings"`
	Overrides        map[string]string `json:"overrides"`
}

// PutOverrides replaces an item's display overrides
func (h *Handlers) PutOverrides(c *gin.Context) {
	itemID, err := parseItemID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req OverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validateKeys(req.Overrides, overrideKeys, "override"); err != nil {
		badRequest(c, err)
		return
	}

	h.store.SetOverrides(itemID, req.OverrideSettings, req.Overrides)
	h.updateStoreGauge()
	h.logger.Info("Overrides updated",
		zap.Int64("item_id", itemID),
		zap.Bool("enabled", req.OverrideSettings),
	)

	item, _ := h.store.Item(itemID)
	c.JSON(http.StatusOK, item)
}

// GetSettings returns the global settings
func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.store.GlobalSettings()})
}

// SettingsRequest is the body of PUT /settings
type SettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// PutSettings merges global settings. Empty values reset a key to its default.
func (h *Handlers) PutSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validateKeys(req.Settings, settingKeys, "setting"); err != nil {
		badRequest(c, err)
		return
	}

	for key, value := range req.Settings {
		h.store.SetGlobalSetting(key, value)
	}
	h.logger.Info("Settings updated", zap.Int("keys", len(req.Settings)))

	c.JSON(http.StatusOK, gin.H{"settings": h.store.GlobalSettings()})
}

// MetricsJSON returns a JSON snapshot of the counters
func (h *Handlers) MetricsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

func (h *Handlers) updateStoreGauge() {
	if h.metrics != nil {
		h.metrics.SetStoreItems(h.store.Len())
	}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
