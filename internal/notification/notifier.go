package notification

import (
	"context"
	"fmt"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
)

// Recipient is who gets told about a booking outcome.
type Recipient struct {
	Name    string
	Address string
}

// Envelope is the ephemeral notification message: composed per mutation,
// consumed once by whichever dispatch mode is configured, then discarded.
// BookingID correlates the message back to the booking record.
type Envelope struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	BookingID string `json:"bookingId"`
}

// Notifier decouples "a booking state change happened" from "a human is
// informed". Implementations must be substitutable without changing the
// lifecycle manager, and a Notify failure must never roll back the
// committed booking mutation.
type Notifier interface {
	Notify(ctx context.Context, rcpt Recipient, bk *bookingDomain.Booking) error
}

// Compose builds the confirmation envelope for a booked delivery.
func Compose(rcpt Recipient, bk *bookingDomain.Booking) Envelope {
	name := rcpt.Name
	if name == "" {
		name = "Customer"
	}

	subject := fmt.Sprintf("Congratulations! %s, Your Delivery Has Been Booked...", name)
	body := fmt.Sprintf(`Thank you for choosing Fastex for your courier needs! We are excited to assist you in delivering your package swiftly and securely.

Here are the details of your booking:

Booking ID: %s
Pickup Address: %s
Delivery Address: %s
Receiver Details: %s
Estimated Delivery Time: %s
Delivery Charges: %.2f

Our team is committed to ensuring your package reaches its destination on time. You can track your delivery status in real-time using the Fastex app.

If you have any questions or need assistance, please don't hesitate to contact our support team.

Thank you for trusting Fastex. We look forward to serving you!

Best regards,
The Fastex Team`,
		bk.ID(),
		bk.PickupAddress(),
		bk.DeliveryAddress(),
		bk.ReceiverName(),
		bk.EstimatedDeliveryDate(),
		bk.Price(),
	)

	return Envelope{
		To:        rcpt.Address,
		Subject:   subject,
		Body:      body,
		BookingID: bk.ID().String(),
	}
}
