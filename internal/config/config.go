package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// configFiles are dotenv-style files read from the config path, in order.
// Later files override earlier ones; environment variables override both.
var configFiles = []string{"app.env", ".env"}

// Config holds all configuration for the application
type Config struct {
	DB        DatabaseConfig
	App       AppConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	URL                   string `mapstructure:"DATABASE_URL" validate:"required"`
	MaxOpenConns          int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1"`
	MaxIdleConns          int    `mapstructure:"DB_MAX_IDLE_CONNS" validate:"gte=0"`
	ConnMaxLifetime       int    `mapstructure:"DB_CONN_MAX_LIFETIME" validate:"gte=0"`  // seconds, 0 = unlimited
	ConnMaxIdleTime       int    `mapstructure:"DB_CONN_MAX_IDLE_TIME" validate:"gte=0"` // seconds, 0 = unlimited
	ConnectTimeoutSeconds int    `mapstructure:"DB_CONNECT_TIMEOUT" validate:"gte=1"`
}

// AppConfig holds configuration for the application server
type AppConfig struct {
	HTTPAddr               string `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" validate:"gte=1"`
	Environment            string `mapstructure:"APP_ENV"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	Format           string  `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS" validate:"gte=0"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// RedisConfig holds configuration for the Redis client backing the rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" validate:"gte=0"`
	PoolSize int    `mapstructure:"REDIS_POOL_SIZE" validate:"gte=0"`
}

// RateLimitConfig holds configuration for request rate limiting
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	BurstCapacity     int     `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
}

// LoadConfig reads configuration from dotenv files in path and the environment.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, name := range configFiles {
		file := filepath.Join(path, name)
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat config file %s: %w", file, err)
		}

		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	v.AutomaticEnv()

	var config Config

	config.DB.URL = v.GetString("DATABASE_URL")
	config.DB.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	config.DB.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	config.DB.ConnMaxLifetime = v.GetInt("DB_CONN_MAX_LIFETIME")
	config.DB.ConnMaxIdleTime = v.GetInt("DB_CONN_MAX_IDLE_TIME")
	config.DB.ConnectTimeoutSeconds = v.GetInt("DB_CONNECT_TIMEOUT")

	config.App.HTTPAddr = v.GetString("HTTP_ADDR")
	config.App.ShutdownTimeoutSeconds = v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")
	config.App.Environment = v.GetString("APP_ENV")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = v.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")
	config.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	config.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	config.RateLimit.RequestsPerSecond = v.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.BurstCapacity = v.GetInt("RATE_LIMIT_BURST")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 0)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 0)
	v.SetDefault("DB_CONNECT_TIMEOUT", 10)

	v.SetDefault("HTTP_ADDR", "127.0.0.1:8090")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("APP_ENV", "development")

	// APP_ENV is read from the process environment only; files are not merged yet.
	if os.Getenv("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", "users-api")
	v.SetDefault("SERVICE_VERSION", "1.0.0")

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

// Validate checks the loaded configuration before any dependency is built.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.RateLimit.Enabled && c.Redis.Addr == "" {
		return errors.New("invalid configuration: REDIS_ADDR is required when RATE_LIMIT_ENABLED is set")
	}

	return nil
}
