package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
)

const logWelcomerName = "log"

// LogWelcomer pretends to send the welcome email: it logs after a delay.
// The timer is not awaited and may not fire before the process exits.
type LogWelcomer struct {
	delay time.Duration
	log   zerolog.Logger
	m     *metrics.Metrics
}

func NewLogWelcomer(delay time.Duration, logger zerolog.Logger, m *metrics.Metrics) *LogWelcomer {
	logger = logger.With().Str("component", "LogWelcomer").Logger()
	return &LogWelcomer{delay: delay, log: logger, m: m}
}

func (w *LogWelcomer) Welcome(_ context.Context, sub models.Subscriber) {
	email := sub.Email
	time.AfterFunc(w.delay, func() {
		w.log.Info().Str("email", email).Msg("welcome email sent")
		w.m.RecordWelcome(logWelcomerName, nil)
	})
}

func (w *LogWelcomer) Farewell(_ context.Context, email string) {
	w.log.Info().Str("email", email).Msg("subscriber left the waitlist")
}
