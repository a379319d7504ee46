package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// wildcardOrigin in CORS_ALLOW_ORIGINS lets any page call /generate and /checksum.
const wildcardOrigin = "*"

// createCORSMiddleware returns nil unless cross-origin callers are enabled and
// at least one origin is listed. The bundled UI is same-origin and never needs it.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("cors enabled without origins, middleware not installed",
			slog.String("cors_allow_origins", allowOriginsStr))
		return nil
	}

	config := cors.Config{
		// Token endpoints take JSON bodies; the UI routes are read-only.
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, wildcardOrigin) {
		config.AllowAllOrigins = true
		logger.Warn("cors allows every origin")
	} else {
		config.AllowOrigins = origins
		logger.Info("cors enabled", slog.Any("origins", origins))
	}

	return cors.New(config)
}

// parseOrigins splits CORS_ALLOW_ORIGINS on commas, dropping blanks and repeats.
func parseOrigins(originsStr string) []string {
	var origins []string
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" || slices.Contains(origins, origin) {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
