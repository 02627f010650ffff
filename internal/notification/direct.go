package notification

import (
	"context"
	"fmt"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers a composed envelope over a mail transport. It is shared by
// the direct strategy and the queue delivery worker.
type Mailer interface {
	Send(env Envelope) error
}

// SMTPMailer sends envelopes through an SMTP server using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTPMailer for the given transport credentials.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers the envelope. It blocks until the transport accepts the
// message; end-to-end delivery is not confirmed.
func (m *SMTPMailer) Send(env Envelope) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", env.To)
	msg.SetHeader("Subject", env.Subject)
	msg.SetBody("text/plain", env.Body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// DirectNotifier composes the message and hands it to the mail transport
// synchronously.
type DirectNotifier struct {
	mailer Mailer
	logger *zap.Logger
}

// NewDirectNotifier creates a DirectNotifier.
func NewDirectNotifier(mailer Mailer, logger *zap.Logger) *DirectNotifier {
	return &DirectNotifier{mailer: mailer, logger: logger}
}

// Notify sends the booking confirmation immediately through the transport.
func (n *DirectNotifier) Notify(_ context.Context, rcpt Recipient, bk *bookingDomain.Booking) error {
	env := Compose(rcpt, bk)
	if err := n.mailer.Send(env); err != nil {
		return err
	}

	n.logger.Info("notification sent",
		zap.String("booking_id", env.BookingID),
		zap.String("to", env.To),
	)
	return nil
}
