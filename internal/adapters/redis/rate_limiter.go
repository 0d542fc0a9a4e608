// Package redis provides Redis-based adapters for the volunteer API.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a Redis-backed fixed-window request limiter.
// Backing the counters with Redis keeps the window consistent across
// replicas, unlike an in-process counter.
type RateLimiter struct {
	client redis.UniversalClient
	prefix string
	window time.Duration
	limit  int64
}

// RateLimiterConfig groups parameters for NewRateLimiter.
type RateLimiterConfig struct {
	// Window is the fixed window length.
	Window time.Duration
	// Limit is the maximum number of requests per key per window.
	Limit int64
	// Prefix namespaces the counter keys. Defaults to "ratelimit:".
	Prefix string
}

// NewRateLimiter creates a Redis-backed fixed-window limiter.
func NewRateLimiter(client redis.UniversalClient, cfg RateLimiterConfig) (*RateLimiter, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if cfg.Window <= 0 {
		return nil, errors.New("window must be positive")
	}
	if cfg.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RateLimiter{
		client: client,
		prefix: prefix,
		window: cfg.Window,
		limit:  cfg.Limit,
	}, nil
}

// Allow reports whether the caller identified by key may proceed.
// The counter key carries the window's expiry, so stale windows clean
// themselves up.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("rate limit key cannot be empty")
	}

	redisKey := l.prefix + key

	// INCR + EXPIRE NX in one round trip. The expiry is only set when the
	// key is created, pinning the window to the first request in it.
	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return count.Val() <= l.limit, nil
}
