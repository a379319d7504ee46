package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tokengen/internal/config"
	"github.com/allisson/tokengen/internal/metrics"
	tokenHTTP "github.com/allisson/tokengen/internal/token/http"
	tokenService "github.com/allisson/tokengen/internal/token/service"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
	uiHTTP "github.com/allisson/tokengen/internal/ui/http"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createStaticDir creates a temporary static directory, optionally with an index page.
func createStaticDir(t *testing.T, withIndex bool) string {
	t.Helper()
	dir := t.TempDir()
	if withIndex {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>tokengen</h1>"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ok')"), 0o600))
	}
	return dir
}

// createTestServer creates a server whose readiness depends on staticDir.
func createTestServer(staticDir string) *Server {
	logger := discardLogger()
	return NewServer(uiHTTP.NewUIHandler(staticDir, logger), "localhost", 8080, logger)
}

// createFullServer creates a server with the full router and real token use case.
func createFullServer(t *testing.T, staticDir string, provider *metrics.Provider) *Server {
	t.Helper()
	logger := discardLogger()
	useCase := tokenUseCase.NewTokenUseCase(
		tokenService.NewBase64Generator(),
		tokenService.NewCodePointChecksum(),
		20,
	)

	server := NewServer(uiHTTP.NewUIHandler(staticDir, logger), "localhost", 8080, logger)
	server.SetupRouter(&config.Config{}, tokenHTTP.NewTokenHandler(useCase, logger), provider)
	return server
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer(t.TempDir())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Run("Success_Ready", func(t *testing.T) {
		server := createTestServer(createStaticDir(t, true))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ready", response["status"])
	})

	t.Run("Error_MissingIndex", func(t *testing.T) {
		server := createTestServer(createStaticDir(t, false))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])

		components, ok := response["components"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "error", components["static"])
	})

	t.Run("Error_NilUIHandler", func(t *testing.T) {
		server := NewServer(nil, "localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Error_ShuttingDown", func(t *testing.T) {
		server := createTestServer(createStaticDir(t, true))
		server.shuttingDown.Store(true)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		components, ok := response["components"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "shutting_down", components["server"])
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.POST("/generate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": "abc"})
	})

	w := serve(router, http.MethodPost, "/generate?trace=1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/generate?trace=1", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
}

func TestCustomLoggerMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "ClientError", status: http.StatusUnprocessableEntity, level: "WARN"},
		{name: "ServerError", status: http.StatusInternalServerError, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			router := gin.New()
			router.Use(CustomLoggerMiddleware(logger))
			router.GET("/status", func(c *gin.Context) {
				c.Status(tt.status)
			})

			serve(router, http.MethodGet, "/status", "")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := serve(router, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_Endpoints(t *testing.T) {
	server := createFullServer(t, createStaticDir(t, true), nil)
	handler := server.GetHandler()

	t.Run("Health", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Ready", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Index", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "<h1>tokengen</h1>", w.Body.String())
	})

	t.Run("StaticAsset", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/ui/app.js", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "console.log('ok')", w.Body.String())
	})

	t.Run("StaticIndexVerbatim", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/ui/index.html", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<h1>tokengen</h1>", w.Body.String())
	})

	t.Run("StaticDirectoryNotServed", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/ui/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GenerateNullLengthWholeToken", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/generate", `{"length": null}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["token"], 88)
	})

	t.Run("StaticAssetMissing", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/ui/missing.css", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GenerateDefault", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/generate", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["token"], 20)
	})

	t.Run("GenerateCapped", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/generate", `{"length": 100}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["token"], 88)
	})

	t.Run("Checksum", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/checksum", `{"token": "AB"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"checksum": 131}`, w.Body.String())
	})

	t.Run("ChecksumMissingToken", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/checksum", `{}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("RequestIDHeader", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/health", "")

		requestID := w.Header().Get("X-Request-Id")
		require.NotEmpty(t, requestID)
		parsed, err := uuid.Parse(requestID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("NotFound", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/nonexistent", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_IndexMissing(t *testing.T) {
	server := createFullServer(t, createStaticDir(t, false), nil)

	w := serve(server.GetHandler(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestRouter_HTTPMetrics(t *testing.T) {
	provider, err := metrics.NewProvider("router_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	server := createFullServer(t, createStaticDir(t, true), provider)
	serve(server.GetHandler(), http.MethodPost, "/checksum", `{"token": "A"}`)

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	w := serve(metricsServer.GetHandler(), http.MethodGet, MetricsPath, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `router_test_http_requests_total\{[^}]*path="/checksum"[^}]*\} 1`, w.Body.String())
}

func TestServer_ShutdownGracefully(t *testing.T) {
	logger := discardLogger()
	server := NewServer(uiHTTP.NewUIHandler(t.TempDir(), logger), "localhost", 0, logger)
	server.SetupRouter(&config.Config{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))
	assert.True(t, server.shuttingDown.Load())

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := serve(metricsServer.GetHandler(), http.MethodGet, MetricsPath, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestMetricsServer_NilProvider(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	w := serve(metricsServer.GetHandler(), http.MethodGet, MetricsPath, "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "not_found", response["error"])
}

func TestMetricsServer_Head(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)

	w := serve(metricsServer.GetHandler(), http.MethodHead, MetricsPath, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsServer_StartAddressInUse(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = listener.Close()
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	metricsServer := NewMetricsServer("127.0.0.1", port, discardLogger(), nil)

	err = metricsServer.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics server: listen on")
}
