package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/pkg/logger"
)

// Logger returns a Gin middleware that writes one access log line per request.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		l := logger.WithContext(c.Request.Context(), log)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			l.Error("request completed", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			l.Warn("request completed", fields...)
		default:
			l.Info("request completed", fields...)
		}
	}
}

// Recovery returns a Gin middleware that turns a handler panic into a 500.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context(), log).Error("panic recovered in handler",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}
