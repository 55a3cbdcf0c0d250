package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http/handler"
)

// CounterStore is the fixed-window counter behind the rate limiter.
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) CounterStore {
	return &redisCounter{client: client}
}

func (c *redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

func (c *redisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// RateLimitMiddleware applies a fixed window per caller identity and
// endpoint. It runs before any store query, so a limited caller costs one
// Redis round-trip and nothing else.
type RateLimitMiddleware struct {
	counter CounterStore
	limit   int64
	window  time.Duration
}

func NewRateLimitMiddleware(counter CounterStore, limit int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		counter: counter,
		limit:   int64(limit),
		window:  window,
	}
}

// Limit returns the middleware for one endpoint. The window key prefers
// the authenticated profile id and falls back to the client IP. Counter
// failures fail open: the store queries are what the limiter protects,
// and search staying up is worth a loose window.
func (m *RateLimitMiddleware) Limit(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetString("profile_id")
		if identity == "" {
			identity = c.ClientIP()
		}
		key := "rl:" + endpoint + ":" + identity

		count, err := m.counter.Incr(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			_ = m.counter.Expire(c.Request.Context(), key, m.window)
		}
		if count > m.limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.ErrorResponse{
				Error: "rate limit exceeded, try again later",
			})
			return
		}

		c.Next()
	}
}
