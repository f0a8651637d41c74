package consumer

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/pkg/messaging"
)

type emailSender interface {
	SendWelcome(email string) error
	SendFarewell(email string) error
}

// Consumer turns waitlist events into emails.
type Consumer struct {
	emailSender emailSender
	logger      zerolog.Logger
	m           *metrics.Metrics
}

func NewConsumer(emailSender emailSender, logger zerolog.Logger, m *metrics.Metrics) *Consumer {
	logger = logger.With().Str("component", "Consumer").Logger()
	return &Consumer{
		emailSender: emailSender,
		logger:      logger,
		m:           m,
	}
}

// ReceiveJoined sends the welcome email for a SubscriberJoinedEvent.
func (c *Consumer) ReceiveJoined(d rabbitmq.Delivery) rabbitmq.Action {
	var evt messaging.SubscriberJoinedEvent
	return c.handle(d, messaging.JoinedRoutingKey, &evt, func() (string, error) {
		return evt.Email, c.emailSender.SendWelcome(evt.Email)
	})
}

// ReceiveLeft confirms an unsubscribe by email.
func (c *Consumer) ReceiveLeft(d rabbitmq.Delivery) rabbitmq.Action {
	var evt messaging.SubscriberLeftEvent
	return c.handle(d, messaging.LeftRoutingKey, &evt, func() (string, error) {
		return evt.Email, c.emailSender.SendFarewell(evt.Email)
	})
}

// handle decodes d into evt and runs send. Undecodable messages are discarded,
// failed sends are requeued once and discarded on redelivery.
func (c *Consumer) handle(d rabbitmq.Delivery, eventType string, evt any, send func() (string, error)) rabbitmq.Action {
	c.logger.Debug().
		Str("event", eventType).
		Str("payload", string(d.Body)).
		Msg("received waitlist event")

	if err := json.Unmarshal(d.Body, evt); err != nil {
		c.logger.Error().
			Err(err).
			Str("event", eventType).
			Msg("unmarshal error")
		c.m.ConsumerErrorsTotal.WithLabelValues(eventType, "unmarshal_error").Inc()
		c.m.ConsumerMessagesTotal.WithLabelValues(eventType, "error").Inc()
		return rabbitmq.NackDiscard
	}

	to, err := send()
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("email", to).
			Str("event", eventType).
			Bool("redelivered", d.Redelivered).
			Msg("failed to send email")
		c.m.EmailSentTotal.WithLabelValues(eventType, "error").Inc()
		c.m.ConsumerErrorsTotal.WithLabelValues(eventType, "send_email_error").Inc()
		c.m.ConsumerMessagesTotal.WithLabelValues(eventType, "error").Inc()
		if d.Redelivered {
			return rabbitmq.NackDiscard
		}
		return rabbitmq.NackRequeue
	}

	c.logger.Info().
		Str("email", to).
		Str("event", eventType).
		Msg("email sent")
	c.m.EmailSentTotal.WithLabelValues(eventType, "ok").Inc()
	c.m.ConsumerMessagesTotal.WithLabelValues(eventType, "ok").Inc()
	return rabbitmq.Ack
}
