package http

import (
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gamelog/internal/logger"
)

// registerStatic serves the game list page from dir. Unknown non-API paths
// fall back to index.html. Nothing is served when dir has no index.html.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	if info, err := os.Stat(indexPath); err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "start", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "start", "resource", "static", "result", "ok", "dir", dir)
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:    dir,
		Index:   "index.html",
		HTML5:   true,
		Skipper: skipStatic,
	}))
}

// skipStatic leaves API routes and non-read requests to the router.
func skipStatic(c echo.Context) bool {
	req := c.Request()
	if req.Method != nethttp.MethodGet && req.Method != nethttp.MethodHead {
		return true
	}
	p := req.URL.Path
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
