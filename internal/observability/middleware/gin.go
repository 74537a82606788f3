// Package middleware carries the router-level observability plumbing.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raigen-dev/plan-scheduling/internal/observability/metrics"
)

type GinConfig struct {
	// SkipPaths are logged at debug level only (health probes and the like).
	SkipPaths   []string
	HTTPMetrics *metrics.HTTPMetrics
}

// Gin logs every request with slog and records HTTP metrics when configured.
func Gin(cfg GinConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RecordRequest(c.Request.Context(), c.Request.Method, path, status, duration)
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= http.StatusBadRequest:
			slog.WarnContext(ctx, "request rejected", attrs...)
		default:
			if _, skipped := skip[path]; skipped {
				slog.DebugContext(ctx, "request completed", attrs...)
				return
			}
			slog.InfoContext(ctx, "request completed", attrs...)
		}
	}
}

// PanicRecoveryGin converts panics into logged 500 responses.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": http.StatusText(http.StatusInternalServerError),
				})
			}
		}()
		c.Next()
	}
}
