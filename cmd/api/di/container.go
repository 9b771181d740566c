package di

import (
	"fmt"

	"users-api/cmd/api/infrastructure"
	"users-api/internal/adapter/db/gormrepo"
	ginhandler "users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	"users-api/internal/config"
	"users-api/internal/usecase/user"
	apperrors "users-api/pkg/errors"
	redisclient "users-api/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.UserUsecase
	RateLimiter *middleware.RateLimiter
	GinHandler  *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewStartupError(apperrors.PhaseConfig, err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, apperrors.NewStartupError(apperrors.PhaseDatabase, err)
	}

	c := &Container{
		Config: cfg,
		Logger: l,
		DB:     db,
	}

	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, apperrors.NewStartupError(apperrors.PhaseRedis, err)
		}
		c.RedisClient = rdb
		c.RateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           true,
			},
			l,
		)
	}

	repo := gormrepo.NewUserRepo(db, l)
	c.UserUC = user.New(repo, l)
	c.GinHandler = ginhandler.NewUserHandler(c.UserUC, l)

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
