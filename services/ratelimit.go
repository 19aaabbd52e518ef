package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter backed by Redis, guarding the public
// credential endpoints (registration and token issuance).
type RateLimiter struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
}

// GlobalRateLimiter is the process-wide limiter; nil when Redis is not
// configured, in which case limiting is skipped entirely.
var GlobalRateLimiter *RateLimiter

// NewRateLimiter connects to Redis and returns a limiter.
func NewRateLimiter(redisURL string, limit int, window time.Duration) (*RateLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RateLimiter{
		Client: client,
		Limit:  limit,
		Window: window,
	}, nil
}

// Allow reports whether another attempt is permitted for the given key
// (typically the client address). The first attempt in a window sets the
// key's TTL; the counter disappears with it.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := rl.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate counter: %v", err)
	}

	if count == 1 {
		if err := rl.Client.Expire(ctx, redisKey, rl.Window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate window: %v", err)
		}
	}

	return count <= int64(rl.Limit), nil
}

// Close releases the Redis connection.
func (rl *RateLimiter) Close() error {
	return rl.Client.Close()
}
