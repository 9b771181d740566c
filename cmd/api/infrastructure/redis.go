package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"users-api/internal/config"
	redisclient "users-api/pkg/redis"
)

// NewRedisClient creates a new Redis client with configuration
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	rdb, err := redisclient.NewClient(redisclient.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	return rdb, nil
}
