package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// FixedWindowLimiter counts requests per key in fixed time buckets shared
// through Redis, so every instance sees the same counters.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &FixedWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *FixedWindowLimiter) bucketKey(key string) string {
	bucket := l.now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, bucket)
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.bucketKey(key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window+time.Second)
	}
	return count <= int64(l.limit), nil
}
