package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
)

const eventWelcomerName = "rabbitmq"

type publisher interface {
	SendJoined(ctx context.Context, sub models.Subscriber) error
	SendLeft(ctx context.Context, email string) error
}

// EventWelcomer hands welcome and farewell notices to the notifier process
// as broker events. Publishing runs in the background, detached from the request.
type EventWelcomer struct {
	pub     publisher
	timeout time.Duration
	log     zerolog.Logger
	m       *metrics.Metrics
}

func NewEventWelcomer(pub publisher, timeout time.Duration, logger zerolog.Logger, m *metrics.Metrics) *EventWelcomer {
	logger = logger.With().Str("component", "EventWelcomer").Logger()
	return &EventWelcomer{pub: pub, timeout: timeout, log: logger, m: m}
}

func (w *EventWelcomer) Welcome(ctx context.Context, sub models.Subscriber) {
	w.detach(ctx, func(ctx context.Context) error {
		return w.pub.SendJoined(ctx, sub)
	}, sub.Email, "welcome")
}

func (w *EventWelcomer) Farewell(ctx context.Context, email string) {
	w.detach(ctx, func(ctx context.Context) error {
		return w.pub.SendLeft(ctx, email)
	}, email, "farewell")
}

func (w *EventWelcomer) detach(ctx context.Context, send func(context.Context) error, email, kind string) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, w.timeout)
		defer cancel()

		err := send(ctx)
		w.m.RecordWelcome(eventWelcomerName, err)
		if err != nil {
			w.log.Error().Err(err).Str("email", email).Str("kind", kind).Msg("failed to publish notice")
			return
		}
		w.log.Info().Str("email", email).Str("kind", kind).Msg("notice published")
	}()
}
