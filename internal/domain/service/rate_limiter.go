package service

import "context"

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within the configured limit.
	// Implementations fail open when their backend is unavailable.
	Allow(ctx context.Context, key string) (bool, error)
}
