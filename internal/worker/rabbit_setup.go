package worker

import (
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/nutriflow-landing/pkg/messaging"
)

func (a *App) setupConn() (*rabbitmq.Conn, error) {
	conn, err := rabbitmq.NewConn(
		a.cfg.RabbitMQ.URL,
		rabbitmq.WithConnectionOptionsLogging,
	)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to connect to RabbitMQ")
		return nil, err
	}

	a.log.Info().Msg("Connected to RabbitMQ successfully")
	return conn, nil
}

// Create a new consumer for new waitlist subscribers
func (a *App) setupJoinedConsumer(conn *rabbitmq.Conn) (*rabbitmq.Consumer, error) {
	return a.setupConsumer(conn, messaging.JoinedQueueName, messaging.JoinedRoutingKey)
}

// Create a new consumer for unsubscribes
func (a *App) setupLeftConsumer(conn *rabbitmq.Conn) (*rabbitmq.Consumer, error) {
	return a.setupConsumer(conn, messaging.LeftQueueName, messaging.LeftRoutingKey)
}

func (a *App) setupConsumer(conn *rabbitmq.Conn, queue, routingKey string) (*rabbitmq.Consumer, error) {
	consumer, err := rabbitmq.NewConsumer(
		conn,
		queue,
		rabbitmq.WithConsumerOptionsExchangeName(messaging.ExchangeName),
		rabbitmq.WithConsumerOptionsExchangeDeclare,
		rabbitmq.WithConsumerOptionsExchangeDurable,
		rabbitmq.WithConsumerOptionsRoutingKey(routingKey),
		rabbitmq.WithConsumerOptionsQueueDurable,
	)
	if err != nil {
		return nil, err
	}
	return consumer, nil
}
