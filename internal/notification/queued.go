package notification

import (
	"context"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// Publisher is the queue handoff contract used by the queued strategy.
// Publish must not return nil unless the broker acknowledged the message.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// QueuedNotifier serializes the envelope onto a durable queue for a separate
// consumer to deliver. It returns as soon as the broker acknowledges the
// enqueue, guaranteeing at-least-once handoff.
type QueuedNotifier struct {
	producer Publisher
	topic    string
	logger   *zap.Logger
}

// NewQueuedNotifier creates a QueuedNotifier publishing to the given topic.
func NewQueuedNotifier(producer Publisher, topic string, logger *zap.Logger) *QueuedNotifier {
	return &QueuedNotifier{producer: producer, topic: topic, logger: logger}
}

// Notify publishes the booking confirmation envelope, keyed by booking id.
func (n *QueuedNotifier) Notify(ctx context.Context, rcpt Recipient, bk *bookingDomain.Booking) error {
	env := Compose(rcpt, bk)
	if err := n.producer.Publish(ctx, n.topic, env.BookingID, env); err != nil {
		return err
	}

	n.logger.Info("notification enqueued",
		zap.String("booking_id", env.BookingID),
		zap.String("topic", n.topic),
	)
	return nil
}
