// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokengen/internal/config"
	"github.com/allisson/tokengen/internal/metrics"
	tokenHTTP "github.com/allisson/tokengen/internal/token/http"
	uiHTTP "github.com/allisson/tokengen/internal/ui/http"
)

// Server represents the HTTP API server.
type Server struct {
	server       *http.Server
	logger       *slog.Logger
	router       *gin.Engine
	uiHandler    *uiHTTP.UIHandler
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. The router is built by SetupRouter.
// uiHandler backs the readiness check; a nil handler makes the server report not ready.
func NewServer(
	uiHandler *uiHTTP.UIHandler,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		uiHandler: uiHandler,
		logger:    logger,
		server:    newHTTPServer(host, port),
	}
}

// newHTTPServer returns an http.Server bound to host:port with the timeouts
// shared by the API and metrics listeners. The handler is set by the caller.
func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// listenAndServe blocks in ListenAndServe. A graceful Shutdown is not an error.
func listenAndServe(srv *http.Server, name string) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: listen on %s: %w", name, srv.Addr, err)
	}
	return nil
}

// SetupRouter configures the Gin router with middleware and all routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	tokenHandler *tokenHTTP.TokenHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	if s.uiHandler != nil {
		router.GET("/", s.uiHandler.IndexHandler)
		router.GET("/ui/*filepath", s.uiHandler.AssetHandler)
		router.HEAD("/ui/*filepath", s.uiHandler.AssetHandler)
	}

	if tokenHandler != nil {
		router.POST("/generate", tokenHandler.GenerateHandler)
		router.POST("/checksum", tokenHandler.ChecksumHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil && s.router != nil {
		s.server.Handler = s.router
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))
	return listenAndServe(s.server, "http server")
}

// Shutdown gracefully shuts down the HTTP server. Readiness reports not ready from here on.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve the UI page and accept traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"static": "ok"}
	ready := true

	if s.uiHandler == nil {
		components["static"] = "error"
		ready = false
	} else if _, err := s.uiHandler.IndexPath(); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["static"] = "error"
		ready = false
	}

	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
