package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aescanero/calcsvc/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	metrics *prometheus.Collector
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr              string
	Debug             bool
	ReadHeaderTimeout time.Duration
	Metrics           *prometheus.Collector
	Logger            *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = prometheus.NewCollector(nil)
	}

	router := gin.New()
	// Redirects would bypass the middleware chain and go uncounted.
	router.RedirectTrailingSlash = false
	// Counting runs first so every request is tallied, including 404s
	// and requests that later fail.
	router.Use(countRequests(metrics))
	router.Use(requestID())
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	s := &Server{
		router:  router,
		metrics: metrics,
		logger:  logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/calculate", s.handleCalculate)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
