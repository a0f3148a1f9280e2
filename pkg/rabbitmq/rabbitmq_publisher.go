package rabbitmq

import (
	"context"
	"time"

	"investments-api/pkg/utilities"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitmqPublisher struct {
	Channel    Channel
	Exchange   string
	RoutingKey string
}

type IRabbitmqPublisher interface {
	Publish(body utilities.Serializable) error
}

func NewPublisher(ch Channel, exchange, routingKey string) *RabbitmqPublisher {
	return &RabbitmqPublisher{
		Channel:    ch,
		Exchange:   exchange,
		RoutingKey: routingKey,
	}
}

// NewPublisherFromConnection opens a dedicated channel on conn.
func NewPublisherFromConnection(conn *amqp.Connection, cfg RabbitmqConfig) (*RabbitmqPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	return NewPublisher(ch, cfg.Exchange, cfg.RoutingKey), nil
}

func (rp *RabbitmqPublisher) Publish(body utilities.Serializable) error {
	json, err := body.Serialize()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return rp.Channel.PublishWithContext(
		ctx,
		rp.Exchange,
		rp.RoutingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         json,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)
}

func (rp *RabbitmqPublisher) Close() error {
	return rp.Channel.Close()
}
