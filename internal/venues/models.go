package venues

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue is a bookable sports facility listed by a partner. Sports,
// Amenities and Images are stored as JSON columns.
type Venue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartnerID   uuid.UUID `json:"partnerId" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Address     string    `json:"address" gorm:"not null;size:512"`
	City        string    `json:"city" gorm:"index;not null;size:100"`
	Sports      []string  `json:"sports" gorm:"serializer:json"`
	Amenities   []string  `json:"amenities" gorm:"serializer:json"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	StartTime   string    `json:"startTime" gorm:"size:5"` // HH:MM, opening time
	EndTime     string    `json:"endTime" gorm:"size:5"`   // HH:MM, closing time
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Venue) TableName() string {
	return "venues"
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
