package slots

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slot is a bookable time window on a venue for a specific calendar day.
// Date is stored as YYYY-MM-DD and times as HH:MM to match the wire format.
type Slot struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VenueID   uuid.UUID `json:"venueId" gorm:"type:uuid;index;not null"`
	Date      string    `json:"date" gorm:"not null;size:10"`
	StartTime string    `json:"startTime" gorm:"not null;size:5"`
	EndTime   string    `json:"endTime" gorm:"not null;size:5"`
	Price     float64   `json:"price" gorm:"not null"`
	IsBooked  bool      `json:"isBooked" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Slot) TableName() string {
	return "slots"
}

func (s *Slot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
