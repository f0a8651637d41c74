package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter admits at most a configured number of requests per key and window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
