package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokengen/internal/httputil"
	"github.com/allisson/tokengen/internal/metrics"
)

// MetricsPath is the route the Prometheus scrape endpoint is mounted on.
const MetricsPath = "/metrics"

// MetricsServer exposes the token counters and HTTP histograms on their own
// listener so scrapes never share a port with /generate traffic.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer builds the scrape listener. A nil provider leaves MetricsPath
// unregistered and every request gets the JSON not_found body.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		scrape := gin.WrapH(metricsProvider.Handler())
		router.GET(MetricsPath, scrape)
		router.HEAD(MetricsPath, scrape)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		})
	})

	srv := newHTTPServer(host, port)
	srv.Handler = router

	return &MetricsServer{server: srv, logger: logger}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks until the listener is shut down.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("starting metrics server",
		slog.String("addr", s.server.Addr),
		slog.String("path", MetricsPath),
	)
	return listenAndServe(s.server, "metrics server")
}

// Shutdown drains in-flight scrapes.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
