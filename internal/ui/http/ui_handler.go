// Package http serves the browser UI: the index page at / and static assets under /ui.
package http

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/tokengen/internal/errors"
	"github.com/allisson/tokengen/internal/httputil"
)

// IndexFile is the page served at the root path.
const IndexFile = "index.html"

var (
	// ErrIndexNotFound indicates the static directory has no index page.
	ErrIndexNotFound = apperrors.Wrap(apperrors.ErrNotFound, "index page not found")

	// ErrAssetNotFound indicates a /ui path that does not name a regular file.
	ErrAssetNotFound = apperrors.Wrap(apperrors.ErrNotFound, "asset not found")
)

// UIHandler serves files from a static asset directory.
type UIHandler struct {
	staticDir string
	logger    *slog.Logger
}

// NewUIHandler creates a UI handler serving files from staticDir.
func NewUIHandler(staticDir string, logger *slog.Logger) *UIHandler {
	return &UIHandler{
		staticDir: staticDir,
		logger:    logger,
	}
}

// IndexHandler returns the index page.
// GET / - Returns 200 with text/html, or 404 when index.html is missing.
func (h *UIHandler) IndexHandler(c *gin.Context) {
	indexPath, err := h.IndexPath()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.serveFile(c, indexPath)
}

// AssetHandler returns a file from the static directory verbatim.
// GET /ui/*filepath - Returns 200 with the file, 404 for missing files and directories.
// index.html is served like any other file and directories are never listed.
func (h *UIHandler) AssetHandler(c *gin.Context) {
	assetPath, err := h.AssetPath(c.Param("filepath"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.serveFile(c, assetPath)
}

// IndexPath returns the path of the index page, or ErrIndexNotFound when it is absent
// or is a directory.
func (h *UIHandler) IndexPath() (string, error) {
	indexPath := filepath.Join(h.staticDir, IndexFile)

	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		return "", apperrors.Wrapf(ErrIndexNotFound, "stat %s", indexPath)
	}

	return indexPath, nil
}

// AssetPath resolves name inside the static directory. The name is cleaned as a rooted
// path, so ".." segments cannot leave the directory. Anything but a regular file yields
// ErrAssetNotFound.
func (h *UIHandler) AssetPath(name string) (string, error) {
	assetPath := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+name)))

	info, err := os.Stat(assetPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", apperrors.Wrapf(ErrAssetNotFound, "stat %s", name)
	}

	return assetPath, nil
}

// serveFile writes the file with http.ServeContent, which handles Range and
// conditional requests but never redirects.
func (h *UIHandler) serveFile(c *gin.Context, filePath string) {
	f, err := os.Open(filePath) //nolint:gosec // path is resolved inside the static directory
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrapf(ErrAssetNotFound, "open %s", filePath), h.logger)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && h.logger != nil {
			h.logger.Warn("failed to close static file", slog.Any("error", closeErr))
		}
	}()

	info, err := f.Stat()
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrapf(ErrAssetNotFound, "stat %s", filePath), h.logger)
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
