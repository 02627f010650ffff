package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Fields is the caller-supplied portion of a booking. The core copies these
// verbatim; only presence of an owner is validated at creation.
type Fields struct {
	FromLocation          string
	ToLocation            string
	Price                 float64
	BookingClass          string
	PickupAddress         string
	DeliveryAddress       string
	ReceiverName          string
	EstimatedDeliveryDate string
}

// Booking is the aggregate root for the booking domain.
type Booking struct {
	id                    uuid.UUID
	fromLocation          string
	toLocation            string
	price                 float64
	bookingClass          string
	pickupAddress         string
	deliveryAddress       string
	receiverName          string
	estimatedDeliveryDate string
	status                Status
	bookedBy              string
	bookedOn              time.Time
	modifiedOn            time.Time
	images                []string

	version int64
}

// NewBooking creates a Booking for the given owner. The identifier is
// assigned here and never caller-supplied; status is forced to ACTIVE
// regardless of any caller input.
func NewBooking(bookedBy string, fields Fields) (*Booking, error) {
	if bookedBy == "" {
		return nil, errors.New("booking owner is required")
	}

	now := time.Now().UTC()
	return &Booking{
		id:                    uuid.New(),
		fromLocation:          fields.FromLocation,
		toLocation:            fields.ToLocation,
		price:                 fields.Price,
		bookingClass:          fields.BookingClass,
		pickupAddress:         fields.PickupAddress,
		deliveryAddress:       fields.DeliveryAddress,
		receiverName:          fields.ReceiverName,
		estimatedDeliveryDate: fields.EstimatedDeliveryDate,
		status:                StatusActive,
		bookedBy:              bookedBy,
		bookedOn:              now,
		modifiedOn:            now,
		version:               1,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	fields Fields,
	status Status,
	bookedBy string,
	bookedOn time.Time,
	modifiedOn time.Time,
	images []string,
	version int64,
) *Booking {
	return &Booking{
		id:                    id,
		fromLocation:          fields.FromLocation,
		toLocation:            fields.ToLocation,
		price:                 fields.Price,
		bookingClass:          fields.BookingClass,
		pickupAddress:         fields.PickupAddress,
		deliveryAddress:       fields.DeliveryAddress,
		receiverName:          fields.ReceiverName,
		estimatedDeliveryDate: fields.EstimatedDeliveryDate,
		status:                status,
		bookedBy:              bookedBy,
		bookedOn:              bookedOn,
		modifiedOn:            modifiedOn,
		images:                images,
		version:               version,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// FromLocation returns the origin location.
func (b *Booking) FromLocation() string { return b.fromLocation }

// ToLocation returns the destination location.
func (b *Booking) ToLocation() string { return b.toLocation }

// Price returns the delivery charge.
func (b *Booking) Price() float64 { return b.price }

// BookingClass returns the service class.
func (b *Booking) BookingClass() string { return b.bookingClass }

// PickupAddress returns the pickup address.
func (b *Booking) PickupAddress() string { return b.pickupAddress }

// DeliveryAddress returns the delivery address.
func (b *Booking) DeliveryAddress() string { return b.deliveryAddress }

// ReceiverName returns the receiver's name.
func (b *Booking) ReceiverName() string { return b.receiverName }

// EstimatedDeliveryDate returns the caller-supplied delivery estimate.
// The core treats it as an opaque string.
func (b *Booking) EstimatedDeliveryDate() string { return b.estimatedDeliveryDate }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// BookedBy returns the owner identifier. The owner is set at creation and
// immutable thereafter.
func (b *Booking) BookedBy() string { return b.bookedBy }

// BookedOn returns the creation timestamp.
func (b *Booking) BookedOn() time.Time { return b.bookedOn }

// ModifiedOn returns the last-modified timestamp.
func (b *Booking) ModifiedOn() time.Time { return b.modifiedOn }

// Images returns the append-only list of attachment references.
func (b *Booking) Images() []string { return b.images }

// Version returns the entity version used for conditional writes.
func (b *Booking) Version() int64 { return b.version }

// --- Behavior ---

// OwnedBy reports whether user is the booking's owner. The comparison is an
// exact string equality with no normalization.
func (b *Booking) OwnedBy(user string) bool {
	return b.bookedBy == user
}

// ApplyPatch updates the service class and price. Each field is
// independently optional; nil fields are left untouched. The last-modified
// timestamp advances even when the patch is empty.
func (b *Booking) ApplyPatch(bookingClass *string, price *float64) {
	if bookingClass != nil {
		b.bookingClass = *bookingClass
	}
	if price != nil {
		b.price = *price
	}
	b.modifiedOn = time.Now().UTC()
}

// Inactivate transitions the booking to INACTIVE. Re-applying to an already
// inactive booking is an accepted no-op, not an error.
func (b *Booking) Inactivate() {
	b.status = StatusInactive
	b.modifiedOn = time.Now().UTC()
}

// AttachImage appends an attachment reference. The image list only grows.
func (b *Booking) AttachImage(url string) {
	b.images = append(b.images, url)
	b.modifiedOn = time.Now().UTC()
}

// IncrementVersion bumps the version for the store's conditional write.
func (b *Booking) IncrementVersion() {
	b.version++
}
