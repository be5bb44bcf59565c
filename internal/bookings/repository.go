package bookings

import (
	"context"
	"errors"
	"fmt"

	"courtside/internal/slots"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotUnavailable = errors.New("one or more slots are already booked")
	ErrSlotMissing     = errors.New("one or more slots do not exist")
)

type Repository interface {
	CreateWithSlotLock(ctx context.Context, booking *Booking, slotIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByPartner(ctx context.Context, partnerID uuid.UUID) ([]Booking, error)
	GetByUserMobile(ctx context.Context, mobile string) ([]Booking, error)
	UpdateStatuses(ctx context.Context, id uuid.UUID, bookingStatus, paymentStatus, status string) error
	CancelWithSlotRelease(ctx context.Context, booking *Booking) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSlotLock atomically reserves the requested slots and creates
// the booking. Slot rows are locked FOR UPDATE so two players racing for
// the same window cannot both succeed.
func (r *repository) CreateWithSlotLock(ctx context.Context, booking *Booking, slotIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lockedSlots []slots.Slot
		if err := slotLockQuery(tx, slotIDs).Find(&lockedSlots).Error; err != nil {
			return fmt.Errorf("failed to lock slots: %w", err)
		}

		if len(lockedSlots) != len(slotIDs) {
			return ErrSlotMissing
		}
		for _, s := range lockedSlots {
			if s.IsBooked {
				return ErrSlotUnavailable
			}
			if s.VenueID != booking.VenueID || s.Date != booking.Date {
				return errors.New("slot does not belong to the requested venue and date")
			}
		}

		// Freeze the slot windows and prices onto the booking.
		booking.Slots = make([]BookingSlot, 0, len(lockedSlots))
		booking.Amount = 0
		for _, s := range lockedSlots {
			booking.Slots = append(booking.Slots, BookingSlot{
				SlotID:    s.ID,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Price:     s.Price,
			})
			booking.Amount += s.Price
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		err := tx.Model(&slots.Slot{}).
			Where("id IN ?", slotIDs).
			Update("is_booked", true).Error
		if err != nil {
			return fmt.Errorf("failed to mark slots booked: %w", err)
		}

		return nil
	})
}

// slotLockQuery selects the slot rows with a row-level SELECT ... FOR
// UPDATE lock so concurrent booking transactions serialize on them.
func slotLockQuery(tx *gorm.DB, slotIDs []uuid.UUID) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", slotIDs)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Slots").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetByPartner returns every booking across the partner's venues.
func (r *repository) GetByPartner(ctx context.Context, partnerID uuid.UUID) ([]Booking, error) {
	var list []Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Slots").
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Where("venues.partner_id = ?", partnerID).
		Order("bookings.created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByUserMobile(ctx context.Context, mobile string) ([]Booking, error) {
	var list []Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Slots").
		Where("mobile = ?", mobile).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateStatuses(ctx context.Context, id uuid.UUID, bookingStatus, paymentStatus, status string) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"booking_status": bookingStatus,
			"payment_status": paymentStatus,
			"status":         status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// CancelWithSlotRelease marks the booking cancelled and frees its slots
// in one transaction. All three status fields are rewritten together —
// a stale payment_status=SUCCESS would otherwise keep the booking
// classified as confirmed after its slots are resold.
func (r *repository) CancelWithSlotRelease(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"booking_status": BookingStatusCancelled,
				"payment_status": PaymentStatusFailed,
				"status":         "",
			}).Error
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		slotIDs := make([]uuid.UUID, 0, len(booking.Slots))
		for _, s := range booking.Slots {
			slotIDs = append(slotIDs, s.SlotID)
		}
		if len(slotIDs) == 0 {
			return nil
		}

		err = tx.Model(&slots.Slot{}).
			Where("id IN ?", slotIDs).
			Update("is_booked", false).Error
		if err != nil {
			return fmt.Errorf("failed to release slots: %w", err)
		}

		return nil
	})
}
