package producers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
	"github.com/Nazarious-ucu/nutriflow-landing/pkg/messaging"
)

type amqpPublisher interface {
	PublishWithContext(
		ctx context.Context,
		data []byte,
		routingKeys []string,
		optionFuncs ...func(*rabbitmq.PublishOptions),
	) error
}

// Producer publishes waitlist events to the broker.
type Producer struct {
	prod amqpPublisher
	log  zerolog.Logger
	m    *metrics.Metrics
	now  func() time.Time
}

func NewProducer(prod amqpPublisher, logger zerolog.Logger, m *metrics.Metrics) *Producer {
	logger = logger.With().Str("component", "Producer").Logger()
	return &Producer{
		prod: prod,
		log:  logger,
		m:    m,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (p *Producer) Publish(ctx context.Context, routingKey string, body []byte) error {
	err := p.prod.PublishWithContext(
		ctx,
		body,
		[]string{routingKey},
		rabbitmq.WithPublishOptionsContentType("application/json"),
		rabbitmq.WithPublishOptionsMandatory,
		rabbitmq.WithPublishOptionsPersistentDelivery,
		rabbitmq.WithPublishOptionsExchange(messaging.ExchangeName),
	)
	p.m.RecordRabbitPublish(routingKey, err)
	if err != nil {
		p.log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish message")
		return err
	}
	p.log.Debug().Str("routing_key", routingKey).Msg("message published")
	return nil
}

func (p *Producer) SendJoined(ctx context.Context, sub models.Subscriber) error {
	joinedAt := sub.CreatedAt
	if joinedAt.IsZero() {
		joinedAt = p.now()
	}
	body, err := json.Marshal(messaging.SubscriberJoinedEvent{
		ID:       sub.ID,
		Email:    sub.Email,
		JoinedAt: joinedAt,
	})
	if err != nil {
		p.log.Error().Err(err).Msg("failed to marshal joined event")
		return err
	}

	return p.Publish(ctx, messaging.JoinedRoutingKey, body)
}

func (p *Producer) SendLeft(ctx context.Context, email string) error {
	body, err := json.Marshal(messaging.SubscriberLeftEvent{
		Email:  email,
		LeftAt: p.now(),
	})
	if err != nil {
		p.log.Error().Err(err).Msg("failed to marshal left event")
		return err
	}

	return p.Publish(ctx, messaging.LeftRoutingKey, body)
}
