package bookings

import (
	"time"

	"courtside/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one reservation of slots on a venue for a calendar day.
//
// BookingStatus, PaymentStatus and Status are raw backend state strings.
// The human-facing display status is never stored; it is derived at read
// time (see status.go) so state changes reflect immediately.
type Booking struct {
	ID                   uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VenueID              uuid.UUID     `json:"venueId" gorm:"type:uuid;index;not null"`
	Venue                *venues.Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
	Mobile               string        `json:"mobile" gorm:"index;not null;size:10"`
	CustomerName         string        `json:"customerName" gorm:"size:255"`
	Date                 string        `json:"date" gorm:"not null;size:10"` // YYYY-MM-DD
	Slots                []BookingSlot `json:"slots" gorm:"foreignKey:BookingID"`
	Amount               float64       `json:"amount" gorm:"not null"`
	BookingStatus        string        `json:"bookingStatus" gorm:"size:32"`
	PaymentStatus        string        `json:"paymentStatus" gorm:"size:32"`
	Status               string        `json:"status" gorm:"size:32"`
	PaymentScreenshotURL string        `json:"paymentScreenshotUrl" gorm:"size:1024"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BookingSlot is a denormalized copy of the reserved time window. The
// price is frozen at booking time so later slot edits don't change history.
type BookingSlot struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingID uuid.UUID `json:"bookingId" gorm:"type:uuid;index;not null"`
	SlotID    uuid.UUID `json:"slotId" gorm:"type:uuid;not null"`
	StartTime string    `json:"startTime" gorm:"not null;size:5"`
	EndTime   string    `json:"endTime" gorm:"not null;size:5"`
	Price     float64   `json:"price" gorm:"not null"`
}

func (BookingSlot) TableName() string {
	return "booking_slots"
}

func (s *BookingSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// VenueName returns the denormalized venue name, empty when the venue
// association was not loaded.
func (b *Booking) VenueName() string {
	if b.Venue == nil {
		return ""
	}
	return b.Venue.Name
}

// Raw backend status values.
const (
	BookingStatusInitiated = "INITIATED"
	BookingStatusPaid      = "PAID"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"

	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"

	StatusSuccess = "SUCCESS"
)
