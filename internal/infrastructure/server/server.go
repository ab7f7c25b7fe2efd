package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/keypoints/internal/api/http"
	"github.com/GriffinCanCode/keypoints/internal/api/middleware"
	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/config"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/logging"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/keypoints/internal/storage"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	handler http.Handler
	httpSrv *http.Server
	store   *storage.Store
	service *keypoints.Service
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing key points server",
		zap.String("port", cfg.Server.Port),
		zap.String("data", cfg.Storage.DataGlob),
	)

	metrics := monitoring.NewMetrics()

	// Seed the store: data files first, env widget settings on top
	store := storage.NewStore()
	if cfg.Storage.DataGlob != "" {
		loaded, err := store.LoadGlob(cfg.Storage.DataGlob)
		if err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
		logger.Info("Loaded data files", zap.Strings("files", loaded), zap.Int("items", store.Len()))
	}
	for key, value := range cfg.Widget.Settings() {
		store.SetGlobalSetting(key, value)
	}
	metrics.SetStoreItems(store.Len())

	service := keypoints.NewService(store, store, store, logger.Named("keypoints")).WithMetrics(metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware())
	router.Use(logging.GinMiddleware(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.String("scope", cfg.RateLimit.Scope),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Scope == "global" {
			router.Use(middleware.GlobalRateLimit(rl))
		} else {
			router.Use(middleware.RateLimit(rl))
		}
	}

	api.NewHandlers(service, store, metrics, logger.Named("api")).Register(router)

	var handler http.Handler = router
	if cfg.Server.Compress {
		handler = gzhttp.GzipHandler(router)
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		handler: handler,
		store:   store,
		service: service,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Service returns the widget service
func (s *Server) Service() *keypoints.Service {
	return s.service
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
	}

	_ = s.logger.Sync()
	return nil
}
