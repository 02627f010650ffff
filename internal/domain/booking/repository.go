package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the referenced booking does not exist.
	ErrNotFound = errors.New("booking not found")

	// ErrConflict is returned when a conditional write loses a race with a
	// concurrent mutation of the same record.
	ErrConflict = errors.New("booking was modified by another transaction")
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByStatusAndOwner retrieves all bookings matching status and owner.
	// Each call issues a fresh query; no cursor state is retained.
	FindByStatusAndOwner(ctx context.Context, status Status, owner string) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with a conditional
	// write on the version field.
	Update(ctx context.Context, booking *Booking) error
}
