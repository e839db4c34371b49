package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// contentTypes maps the extensions the frontend ships to their MIME types.
// Anything else falls back to the SPA entry point.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".ico":  "image/x-icon",
}

// StaticHandler serves the frontend assets and the client-side-routing
// fallback for every path the API does not own.
type StaticHandler struct {
	dir   string
	index string
}

// NewStaticHandler creates a handler rooted at dir with the given index file.
func NewStaticHandler(dir, index string) *StaticHandler {
	return &StaticHandler{dir: dir, index: index}
}

// NoRoute handles everything the router did not match. API paths get a JSON
// 404, non-GET methods too; GET paths resolve against the asset directory.
func (h *StaticHandler) NoRoute(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown API endpoint"})
		return
	}
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown API endpoint"})
		return
	}
	h.serve(c, path)
}

func (h *StaticHandler) serve(c *gin.Context, path string) {
	name := strings.TrimPrefix(filepath.Clean(path), "/")
	contentType, known := contentTypes[strings.ToLower(filepath.Ext(name))]

	// Unknown extensions and the root path serve the SPA entry point so
	// client-side routes deep-link correctly.
	if name == "" || name == "." || !known {
		name = h.index
		contentType = contentTypes[".html"]
	}

	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
