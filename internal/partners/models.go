package partners

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partner is a venue operator account. Partners authenticate with
// email/password and manage venues, slots and bookings from the dashboard.
type Partner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Phone     string    `json:"phone" gorm:"size:15"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Partner) TableName() string {
	return "partners"
}

func (p *Partner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PushSubscription is a browser Web Push endpoint registered from the
// partner dashboard. One partner may hold several (one per browser/device).
// Endpoint is unique so re-registering the same browser updates in place.
type PushSubscription struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartnerID uuid.UUID `json:"partnerId" gorm:"type:uuid;index;not null"`
	Endpoint  string    `json:"endpoint" gorm:"uniqueIndex;not null"`
	P256dh    string    `json:"p256dh" gorm:"not null"`
	Auth      string    `json:"auth" gorm:"not null"`
	UserAgent string    `json:"userAgent" gorm:"size:512"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

func (s *PushSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
