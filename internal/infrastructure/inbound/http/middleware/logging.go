package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

func route(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}

func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("route", route(c)),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("HTTP request failed", attrs...)
			return
		}
		log.Debug("HTTP request handled", attrs...)
	}
}

func Metrics(metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		r := route(c)
		metrics.IncrementHTTPRequests(c.Request.Method, r, strconv.Itoa(c.Writer.Status()))
		metrics.RecordHTTPRequestDuration(c.Request.Method, r, time.Since(start))
	}
}

func Recovery(log ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Panic while handling request",
			slog.String("method", c.Request.Method),
			slog.String("route", route(c)),
			slog.Any("panic", recovered))
		response.Message(c, http.StatusInternalServerError, "internal server error")
		c.Abort()
	})
}
