package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerPublisher stops calling the broker after RepeatNumber consecutive failures.
type BreakerPublisher struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped publisher
}

func NewBreakerPublisher(name string, cfg BreakerConfig, wrapped publisher) *BreakerPublisher {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerPublisher{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerPublisher) SendJoined(ctx context.Context, sub models.Subscriber) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.SendJoined(ctx, sub)
	})
	if err != nil {
		return fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	return nil
}

func (b *BreakerPublisher) SendLeft(ctx context.Context, email string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.SendLeft(ctx, email)
	})
	if err != nil {
		return fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	return nil
}

func (b *BreakerPublisher) State() gobreaker.State {
	return b.cb.State()
}
