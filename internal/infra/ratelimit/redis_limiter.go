// Package ratelimit implements fixed-window request limiting on Redis.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"checkin/config"
	"checkin/internal/domain/lifecycle"
	"checkin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix       = "checkin:ratelimit:"
	defaultRequests = 5
	defaultWindow   = 15 * time.Minute
	redisOpTimeout  = 3 * time.Second
)

// noopLimiter allows everything. Used when Redis is not configured.
type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}

type redisLimiter struct {
	client   redis.Cmdable
	requests int64
	window   time.Duration
}

// Params holds dependencies for RateLimiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter creates a Redis-backed limiter, or a no-op one when no address is configured.
func NewRateLimiter(params Params) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || cfg.RedisAddr == "" {
		params.Logger.Info("Rate limit not configured, using no-op limiter")

		return noopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Fail open: an unreachable Redis only disables limiting
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, rate limiting will fail open",
					slog.String("addr", cfg.RedisAddr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis rate limiter",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("requests", cfg.Requests),
		slog.Duration("window", cfg.Window),
	)

	return NewRedisLimiter(client, cfg.Requests, cfg.Window)
}

// NewRedisLimiter builds a limiter on an existing client.
func NewRedisLimiter(client redis.Cmdable, requests int, window time.Duration) service.RateLimiter {
	if requests <= 0 {
		requests = defaultRequests
	}
	if window <= 0 {
		window = defaultWindow
	}

	return &redisLimiter{
		client:   client,
		requests: int64(requests),
		window:   window,
	}
}

// Allow increments the counter for key and reports whether it is still within the limit.
// Redis errors are returned alongside allowed=true.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	redisKey := hashKey(key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, errors.Wrap(err, "redis incr failed")
	}

	// First hit opens the window. A key left without a TTL by an earlier failed
	// EXPIRE is re-armed so it cannot block forever.
	if count == 1 || l.missingTTL(ctx, redisKey) {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true, errors.Wrap(err, "redis expire failed")
		}
	}

	return count <= l.requests, nil
}

// missingTTL reports whether key exists without an expiry. Lookup errors count as unknown.
func (l *redisLimiter) missingTTL(ctx context.Context, key string) bool {
	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false
	}

	// -1 means no expiry, -2 means the key is gone
	return ttl == -1
}

// hashKey keeps raw emails and addresses out of Redis.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return keyPrefix + hex.EncodeToString(sum[:])
}
