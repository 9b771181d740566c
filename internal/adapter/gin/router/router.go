package router

import (
	"net/http"

	"users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	"users-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// rateLimiter may be nil.
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	serviceName string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	if rateLimiter != nil {
		router.Use(rateLimiter.Handler())
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	router.GET("/users", userHandler.ListUsers)
	router.POST("/users", userHandler.CreateUser)

	return router
}
