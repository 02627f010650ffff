package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingDomain "github.com/fastex-delivery/service-booking/internal/domain/booking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the deliveries table.
type BookingModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FromLocation          string          `gorm:"size:100"`
	ToLocation            string          `gorm:"size:100"`
	Price                 float64         `gorm:"not null"`
	BookingClass          string          `gorm:"size:30"`
	PickupAddress         string          `gorm:"size:500"`
	DeliveryAddress       string          `gorm:"size:500"`
	ReceiverName          string          `gorm:"size:200"`
	EstimatedDeliveryDate string          `gorm:"size:50"`
	Status                string          `gorm:"not null;size:20;index:idx_deliveries_status_booked_by"`
	BookedBy              string          `gorm:"not null;size:100;index:idx_deliveries_status_booked_by"`
	Images                json.RawMessage `gorm:"type:jsonb"`
	Version               int64           `gorm:"not null;default:1"`
	BookedOn              time.Time       `gorm:"not null"`
	ModifiedOn            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "deliveries"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingDomain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByStatusAndOwner retrieves all bookings matching status and owner.
func (r *GormBookingRepository) FindByStatusAndOwner(ctx context.Context, status bookingDomain.Status, owner string) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND booked_by = ?", string(status), owner).
		Order("booked_on DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by status and owner: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking. The write is conditional
// on the version column so a lost race surfaces as ErrConflict instead of a
// silent overwrite.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}

	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"price":         model.Price,
			"booking_class": model.BookingClass,
			"status":        model.Status,
			"images":        model.Images,
			"version":       model.Version,
			"modified_on":   model.ModifiedOn,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookingDomain.ErrConflict
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) (*BookingModel, error) {
	var imagesJSON json.RawMessage
	if bk.Images() != nil {
		data, err := json.Marshal(bk.Images())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal images: %w", err)
		}
		imagesJSON = data
	}

	return &BookingModel{
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
		Images:                imagesJSON,
		Version:               bk.Version(),
		BookedOn:              bk.BookedOn(),
		ModifiedOn:            bk.ModifiedOn(),
	}, nil
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	var images []string
	if len(m.Images) > 0 {
		if err := json.Unmarshal(m.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
	}

	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.Reconstruct(
		m.ID,
		bookingDomain.Fields{
			FromLocation:          m.FromLocation,
			ToLocation:            m.ToLocation,
			Price:                 m.Price,
			BookingClass:          m.BookingClass,
			PickupAddress:         m.PickupAddress,
			DeliveryAddress:       m.DeliveryAddress,
			ReceiverName:          m.ReceiverName,
			EstimatedDeliveryDate: m.EstimatedDeliveryDate,
		},
		status,
		m.BookedBy,
		m.BookedOn,
		m.ModifiedOn,
		images,
		m.Version,
	), nil
}
