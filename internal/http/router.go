package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"gamelog/internal/handler"
)

// NewRouter wires the API and the static frontend. A nil writeLimiter
// disables write throttling.
func NewRouter(
	gameHandler *handler.GameHandler,
	staticDir string,
	writeLimiter *rate.Limiter,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api", WriteLimitMiddleware(writeLimiter))
	gameHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
