package application

import (
	"context"
	"errors"
	"time"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
	"github.com/fastex-delivery/service-booking/internal/identity"
	"github.com/fastex-delivery/service-booking/internal/notification"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// opTimeout bounds each store and dispatcher call. The original system ran
// without timeouts; this is a hardening extension, not a reproduced contract.
const opTimeout = 5 * time.Second

// BookingRequest holds the caller-supplied fields for a new booking.
// Fields are copied verbatim; no range or format validation is applied.
type BookingRequest struct {
	FromLocation          string  `json:"fromLocation"`
	ToLocation            string  `json:"toLocation"`
	Price                 float64 `json:"price"`
	BookingClass          string  `json:"bookingClass"`
	PickupAddress         string  `json:"pickupAddress"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	ReceiverName          string  `json:"receiverName"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate"`
}

// BookingPatch holds the updatable fields. Each is independently optional;
// absent fields are left untouched.
type BookingPatch struct {
	BookingClass *string  `json:"bookingClass,omitempty"`
	Price        *float64 `json:"price,omitempty"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                    uuid.UUID `json:"id"`
	FromLocation          string    `json:"fromLocation"`
	ToLocation            string    `json:"toLocation"`
	Price                 float64   `json:"price"`
	BookingClass          string    `json:"bookingClass"`
	PickupAddress         string    `json:"pickupAddress"`
	DeliveryAddress       string    `json:"deliveryAddress"`
	ReceiverName          string    `json:"receiverName"`
	EstimatedDeliveryDate string    `json:"estimatedDeliveryDate"`
	Status                string    `json:"status"`
	BookedBy              string    `json:"bookedBy"`
	BookedOn              time.Time `json:"bookedOn"`
	ModifiedOn            time.Time `json:"modifiedOn"`
	Images                []string  `json:"images,omitempty"`
}

// BookingService is the booking lifecycle manager. It owns the state machine,
// enforces the ownership invariant, and triggers the notifier after the
// create mutation. It depends only on the Notifier contract, never on
// transport details.
type BookingService struct {
	repo         bookingDomain.BookingRepository
	notifier     notification.Notifier
	imageBaseURL string
	logger       *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	notifier notification.Notifier,
	imageBaseURL string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:         repo,
		notifier:     notifier,
		imageBaseURL: imageBaseURL,
		logger:       logger,
	}
}

// SaveBooking creates a booking owned by the caller and dispatches the
// confirmation notification. A dispatch failure never downgrades a
// successful save: the result stays Success and carries a warning instead.
func (s *BookingService) SaveBooking(ctx context.Context, req BookingRequest, caller identity.Principal) Result {
	bk, err := bookingDomain.NewBooking(caller.Username, bookingDomain.Fields{
		FromLocation:          req.FromLocation,
		ToLocation:            req.ToLocation,
		Price:                 req.Price,
		BookingClass:          req.BookingClass,
		PickupAddress:         req.PickupAddress,
		DeliveryAddress:       req.DeliveryAddress,
		ReceiverName:          req.ReceiverName,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	})
	if err != nil {
		return failureResult(KindValidation, "Operation Unsuccessful", err)
	}

	sctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.repo.Save(sctx, bk); err != nil {
		return failureResult(KindStorage, "Exception Occurred", err)
	}

	result := successResult()
	result.CreationID = bk.ID().String()

	nctx, ncancel := context.WithTimeout(ctx, opTimeout)
	defer ncancel()
	rcpt := notification.Recipient{Name: caller.Name, Address: caller.Email}
	if err := s.notifier.Notify(nctx, rcpt, bk); err != nil {
		s.logger.Warn("notification dispatch failed",
			zap.String("booking_id", bk.ID().String()),
			zap.Error(err),
		)
		result.Warning = "notification dispatch failed"
	}

	return result
}

// UpdateBooking applies the patch to the caller's booking. Only the owner may
// update, and only the service class and price can change.
func (s *BookingService) UpdateBooking(ctx context.Context, bookingID uuid.UUID, patch BookingPatch, caller identity.Principal) Result {
	bk, res := s.loadOwned(ctx, bookingID, caller)
	if bk == nil {
		return res
	}

	bk.ApplyPatch(patch.BookingClass, patch.Price)
	return s.persistMutation(ctx, bk)
}

// InactivateBooking sets the caller's booking to INACTIVE. Re-applying to an
// already inactive booking succeeds and leaves the status unchanged.
func (s *BookingService) InactivateBooking(ctx context.Context, bookingID uuid.UUID, caller identity.Principal) Result {
	bk, res := s.loadOwned(ctx, bookingID, caller)
	if bk == nil {
		return res
	}

	bk.Inactivate()
	return s.persistMutation(ctx, bk)
}

// FetchMyBookings returns all ACTIVE bookings owned by the caller. Each call
// runs a fresh query; no cursor state is retained.
func (s *BookingService) FetchMyBookings(ctx context.Context, caller identity.Principal) ([]BookingDTO, error) {
	sctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	bookings, err := s.repo.FindByStatusAndOwner(sctx, bookingDomain.StatusActive, caller.Username)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

// UpdateImageURL appends the derived attachment URL to the booking's image
// list. A missing booking is a silent no-op.
func (s *BookingService) UpdateImageURL(ctx context.Context, bookingID uuid.UUID, fileKey string) error {
	sctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	bk, err := s.repo.FindByID(sctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingDomain.ErrNotFound) {
			return nil
		}
		return err
	}

	bk.AttachImage(s.imageBaseURL + fileKey)
	bk.IncrementVersion()

	uctx, ucancel := context.WithTimeout(ctx, opTimeout)
	defer ucancel()
	return s.repo.Update(uctx, bk)
}

// loadOwned loads a booking and enforces the ownership invariant. It returns
// the booking on success, or nil plus the unsuccessful result. The ownership
// check is an exact equality; a mismatch is a hard rejection.
func (s *BookingService) loadOwned(ctx context.Context, bookingID uuid.UUID, caller identity.Principal) (*bookingDomain.Booking, Result) {
	sctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	bk, err := s.repo.FindByID(sctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingDomain.ErrNotFound) {
			return nil, failureResult(KindNotFound, "Operation Unsuccessful : Booking Not Found", nil)
		}
		return nil, failureResult(KindStorage, "Exception Occurred", err)
	}

	if !bk.OwnedBy(caller.Username) {
		return nil, failureResult(KindUnauthorized, "Operation Unsuccessful : Not Authorized To Update This Booking", nil)
	}
	return bk, Result{}
}

func (s *BookingService) persistMutation(ctx context.Context, bk *bookingDomain.Booking) Result {
	bk.IncrementVersion()

	sctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.repo.Update(sctx, bk); err != nil {
		return failureResult(KindStorage, "Exception Occurred", err)
	}
	return successResult()
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                    bk.ID(),
		FromLocation:          bk.FromLocation(),
		ToLocation:            bk.ToLocation(),
		Price:                 bk.Price(),
		BookingClass:          bk.BookingClass(),
		PickupAddress:         bk.PickupAddress(),
		DeliveryAddress:       bk.DeliveryAddress(),
		ReceiverName:          bk.ReceiverName(),
		EstimatedDeliveryDate: bk.EstimatedDeliveryDate(),
		Status:                string(bk.Status()),
		BookedBy:              bk.BookedBy(),
		BookedOn:              bk.BookedOn(),
		ModifiedOn:            bk.ModifiedOn(),
		Images:                bk.Images(),
	}
}
