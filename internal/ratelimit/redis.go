package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nutriflow:ratelimit:"

type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter is a fixed-window counter shared by every instance behind a load balancer.
type RedisLimiter struct {
	client   counterStore
	requests int64
	window   time.Duration
}

func NewRedisLimiter(client counterStore, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, requests: int64(requests), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := keyPrefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("redis expire: %w", err)
		}
	}
	if count <= l.requests {
		return Decision{Allowed: true}, nil
	}

	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis ttl: %w", err)
	}
	if ttl <= 0 {
		// key lost its expiry, restore it so the client is not locked out forever
		ttl = l.window
		if err := l.client.Expire(ctx, k, ttl).Err(); err != nil {
			return Decision{}, fmt.Errorf("redis expire: %w", err)
		}
	}
	return Decision{RetryAfter: ttl}, nil
}
