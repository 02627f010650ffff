package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBooking(t *testing.T) *bookingDomain.Booking {
	t.Helper()
	bk, err := bookingDomain.NewBooking("alice", bookingDomain.Fields{
		FromLocation:          "Dublin",
		ToLocation:            "Cork",
		Price:                 25.00,
		BookingClass:          "EXPRESS",
		PickupAddress:         "12 Main St",
		DeliveryAddress:       "4 Quay Rd",
		ReceiverName:          "J. Doe",
		EstimatedDeliveryDate: "2024-05-01",
	})
	require.NoError(t, err)
	return bk
}

func TestCompose_BuildsConfirmationEnvelope(t *testing.T) {
	bk := testBooking(t)
	env := Compose(Recipient{Name: "Alice", Address: "alice@example.com"}, bk)

	assert.Equal(t, "alice@example.com", env.To)
	assert.Equal(t, bk.ID().String(), env.BookingID)
	assert.Contains(t, env.Subject, "Alice")
	assert.Contains(t, env.Subject, "Your Delivery Has Been Booked")
	assert.Contains(t, env.Body, bk.ID().String())
	assert.Contains(t, env.Body, "12 Main St")
	assert.Contains(t, env.Body, "4 Quay Rd")
	assert.Contains(t, env.Body, "J. Doe")
	assert.Contains(t, env.Body, "2024-05-01")
	assert.Contains(t, env.Body, "25.00")
}

func TestCompose_FallsBackToGenericName(t *testing.T) {
	env := Compose(Recipient{Address: "alice@example.com"}, testBooking(t))
	assert.Contains(t, env.Subject, "Customer")
}

type fakeMailer struct {
	sent []Envelope
	err  error
}

func (m *fakeMailer) Send(env Envelope) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, env)
	return nil
}

func TestDirectNotifier_SendsThroughMailer(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewDirectNotifier(mailer, zap.NewNop())
	bk := testBooking(t)

	err := n.Notify(context.Background(), Recipient{Name: "Alice", Address: "alice@example.com"}, bk)

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, bk.ID().String(), mailer.sent[0].BookingID)
}

func TestDirectNotifier_PropagatesTransportError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection reset")}
	n := NewDirectNotifier(mailer, zap.NewNop())

	err := n.Notify(context.Background(), Recipient{Address: "alice@example.com"}, testBooking(t))
	assert.Error(t, err)
}

type fakePublisher struct {
	topic   string
	key     string
	payload interface{}
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, topic, key string, payload interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topic = topic
	p.key = key
	p.payload = payload
	return nil
}

func TestQueuedNotifier_PublishesEnvelopeKeyedByBookingID(t *testing.T) {
	pub := &fakePublisher{}
	n := NewQueuedNotifier(pub, "booking.notifications", zap.NewNop())
	bk := testBooking(t)

	err := n.Notify(context.Background(), Recipient{Name: "Alice", Address: "alice@example.com"}, bk)

	require.NoError(t, err)
	assert.Equal(t, "booking.notifications", pub.topic)
	assert.Equal(t, bk.ID().String(), pub.key)

	env, ok := pub.payload.(Envelope)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", env.To)
	assert.Equal(t, bk.ID().String(), env.BookingID)
}

func TestQueuedNotifier_FailsWithoutBrokerAck(t *testing.T) {
	pub := &fakePublisher{err: fmt.Errorf("broker unavailable")}
	n := NewQueuedNotifier(pub, "booking.notifications", zap.NewNop())

	err := n.Notify(context.Background(), Recipient{Address: "alice@example.com"}, testBooking(t))
	assert.Error(t, err)
}
