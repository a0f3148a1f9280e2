package rabbitmq

import (
	"context"
	"time"

	"investments-api/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

const maxDialBackoff = 30 * time.Second

// ConnectToRabbitmq dials url, retrying with exponential backoff.
func ConnectToRabbitmq(ctx context.Context, url string, maxRetries uint64) (*amqp.Connection, error) {
	queueLogger := logger.Default()

	backoff := retry.NewExponential(1 * time.Second)
	backoff = retry.WithCappedDuration(maxDialBackoff, backoff)
	backoff = retry.WithMaxRetries(maxRetries, backoff)

	attempt := 0
	var conn *amqp.Connection
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		c, err := amqp.Dial(url)
		if err != nil {
			queueLogger.Warnf("Attempt %d to reach Rabbitmq failed: %v", attempt, err)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return conn, nil
}
