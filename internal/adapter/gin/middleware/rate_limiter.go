package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"users-api/pkg/logger"
)

// tokenBucket refills rate tokens per second up to capacity and takes one
// token per call. Bucket state is {last_refill, tokens} in a hash.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
local last_refill = tonumber(bucket[1]) or now
local tokens = tonumber(bucket[2]) or capacity

local elapsed = math.max(0, now - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call('HSET', key, 'last_refill', now, 'tokens', tokens)
redis.call('EXPIRE', key, 60)
return allowed
`)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// RateLimiter limits requests per method, path and client IP using a token
// bucket kept in Redis.
type RateLimiter struct {
	client redis.Scripter
	config RateLimiterConfig
	log    *zap.Logger
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(client redis.Scripter, config RateLimiterConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

// Allow takes one token from the bucket identified by key.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := float64(rl.now().UnixNano()) / float64(time.Second)
	allowed, err := tokenBucket.Run(ctx, rl.client, []string{key},
		rl.config.RequestsPerSecond,
		rl.config.BurstCapacity,
		now,
	).Int64()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// Handler returns the Gin middleware. Redis errors let the request through.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || !rl.config.Enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		key := fmt.Sprintf("ratelimit:tb:%s:%s:%s", c.Request.Method, c.Request.URL.Path, clientIP)

		allowed, err := rl.Allow(c.Request.Context(), key)
		if err != nil {
			logger.WithContext(c.Request.Context(), rl.log).Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", clientIP),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			logger.WithContext(c.Request.Context(), rl.log).Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", rl.config.RequestsPerSecond, rl.config.BurstCapacity),
			})
			return
		}

		c.Next()
	}
}
