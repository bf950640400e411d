// Package web embeds and serves the browser frontend.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iug/student-portal/internal/app/models/dto"
)

//go:embed static
var staticFS embed.FS

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// Register mounts the embedded single-page app on the router. Unknown
// non-API paths fall back to index.html so the client-side router can
// resolve them.
func Register(router *gin.Engine) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	router.NoRoute(func(c *gin.Context) {
		requestPath := c.Request.URL.Path
		if strings.HasPrefix(requestPath, "/api/") {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found.")))
			return
		}

		name := strings.TrimPrefix(path.Clean(requestPath), "/")
		if name == "" {
			name = "index.html"
		}

		data, err := fs.ReadFile(assets, name)
		if err != nil {
			// Client-side route; let the app render it.
			name = "index.html"
			data, err = fs.ReadFile(assets, name)
			if err != nil {
				c.Status(http.StatusNotFound)
				return
			}
		}

		contentType, ok := contentTypes[path.Ext(name)]
		if !ok {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, data)
	})
}
