package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"gamelog/internal/handler"
	"gamelog/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status

			log := logger.Debug
			result := "ok"
			switch {
			case status >= 500:
				log = logger.Error
				result = "failed"
			case status >= 400:
				log = logger.Warn
				result = "failed"
			}

			log("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"remote_ip", c.RealIP(),
			)

			return nil
		}
	}
}

// WriteLimitMiddleware rejects mutating requests beyond the limiter's rate
// with 429. Reads are never limited.
func WriteLimitMiddleware(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || isReadMethod(c.Request().Method) {
				return next(c)
			}
			if !limiter.Allow() {
				logger.Warn("write rate limited",
					"module", "http",
					"action", "request",
					"resource", "http",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
				)
				return handler.Error(c, http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
