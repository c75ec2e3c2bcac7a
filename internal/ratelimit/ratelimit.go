// Package ratelimit provides a Redis-backed fixed-window request limiter.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Limiter counts requests per key within a fixed window
type Limiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

// New creates a new limiter allowing limit requests per window
func New(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		redis:  client,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the caller identified by key is within its budget
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.redis.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	if count == 1 {
		l.redis.Expire(ctx, keyPrefix+key, l.window)
	}

	return count <= int64(l.limit), nil
}

// Middleware limits requests per client IP. Redis failures let the request
// through rather than taking the API down with the cache.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				c.Logger().Error(err)
				return next(c)
			}

			if !ok {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":   http.StatusTooManyRequests,
					"message": "Too many requests.",
					"success": false,
				})
			}

			return next(c)
		}
	}
}
