package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrNotSubscribed     = errors.New("email not subscribed")
)

type subscriberRepository interface {
	Create(ctx context.Context, email string) (models.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// welcomer greets new subscribers. Implementations must not block the caller.
type welcomer interface {
	Welcome(ctx context.Context, sub models.Subscriber)
	Farewell(ctx context.Context, email string)
}

type Service struct {
	repo     subscriberRepository
	welcomer welcomer
	log      zerolog.Logger
	m        *metrics.Metrics
	now      func() time.Time
}

// NewService builds the waitlist service. A nil repo keeps the service stateless:
// addresses are validated, logged and welcomed but never stored.
func NewService(repo subscriberRepository, w welcomer, logger zerolog.Logger, m *metrics.Metrics) *Service {
	logger = logger.With().Str("component", "SubscriptionService").Logger()
	return &Service{
		repo:     repo,
		welcomer: w,
		log:      logger,
		m:        m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Persistent() bool {
	return s.repo != nil
}

// Subscribe validates raw and puts the address on the waitlist.
func (s *Service) Subscribe(ctx context.Context, raw string) (models.Subscriber, error) {
	email, err := ValidateEmail(raw)
	if err != nil {
		s.log.Debug().Ctx(ctx).Err(err).Msg("rejected subscription")
		s.m.BusinessErrors.WithLabelValues("invalid_email", "info").Inc()
		return models.Subscriber{}, err
	}

	sub := models.Subscriber{Email: email, CreatedAt: s.now()}
	if s.repo != nil {
		sub, err = s.repo.Create(ctx, email)
		if errors.Is(err, models.ErrSubscriberExists) {
			return models.Subscriber{}, ErrAlreadySubscribed
		}
		if err != nil {
			return models.Subscriber{}, fmt.Errorf("store subscriber: %w", err)
		}
	}

	s.log.Info().Ctx(ctx).Str("email", email).Msg("new waitlist subscription")
	s.m.SubscribersCreated.Inc()
	s.welcomer.Welcome(ctx, sub)

	return sub, nil
}

// Unsubscribe removes the address from the waitlist and returns the normalized email.
func (s *Service) Unsubscribe(ctx context.Context, raw string) (string, error) {
	email, err := ValidateEmail(raw)
	if err != nil {
		s.m.BusinessErrors.WithLabelValues("invalid_email", "info").Inc()
		return "", err
	}

	if s.repo != nil {
		ok, err := s.repo.Unsubscribe(ctx, email)
		if err != nil {
			return "", fmt.Errorf("unsubscribe: %w", err)
		}
		if !ok {
			s.m.BusinessErrors.WithLabelValues("not_subscribed", "info").Inc()
			return "", ErrNotSubscribed
		}
	}

	s.log.Info().Ctx(ctx).Str("email", email).Msg("waitlist unsubscribe")
	s.m.SubscribersCanceled.Inc()
	s.welcomer.Farewell(ctx, email)

	return email, nil
}

// Count reports active subscribers; always zero without a store.
func (s *Service) Count(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
