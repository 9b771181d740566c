package server

import (
	"net/http"
	"time"

	ginhandler "users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	ginrouter "users-api/internal/adapter/gin/router"

	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	handler *ginhandler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	addr string,
	serviceName string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(handler, rateLimiter, serviceName, l)

	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
