package events

import (
	"context"
	"encoding/json"

	"github.com/fastex-delivery/service-booking/internal/kafka"
	"github.com/fastex-delivery/service-booking/internal/notification"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NotificationConsumer reads queued notification envelopes and delivers them
// through the mail transport. It is the consumer side of the queued dispatch
// strategy, run by the worker binary.
type NotificationConsumer struct {
	consumer *kafka.Consumer
	mailer   notification.Mailer
	logger   *zap.Logger
}

// NewNotificationConsumer creates a NotificationConsumer.
func NewNotificationConsumer(
	brokers []string,
	groupID, topic string,
	mailer notification.Mailer,
	logger *zap.Logger,
) *NotificationConsumer {
	return &NotificationConsumer{
		consumer: kafka.NewConsumer(brokers, groupID, topic),
		mailer:   mailer,
		logger:   logger,
	}
}

// Start begins consuming envelopes. This blocks until the context is cancelled.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *NotificationConsumer) Close() error {
	return c.consumer.Close()
}

func (c *NotificationConsumer) handleMessage(_ context.Context, msg kafkago.Message) error {
	var env notification.Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		c.logger.Error("failed to parse notification envelope",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	if err := c.mailer.Send(env); err != nil {
		// Delivery errors are logged, not retried.
		c.logger.Error("failed to deliver notification",
			zap.String("booking_id", env.BookingID),
			zap.String("to", env.To),
			zap.Error(err),
		)
		return nil
	}

	c.logger.Info("notification delivered",
		zap.String("booking_id", env.BookingID),
		zap.String("to", env.To),
	)
	return nil
}
