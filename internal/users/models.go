package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a player identified by mobile number. Users are created lazily
// the first time a mobile completes an OTP login or places a booking.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Mobile    string    `json:"mobile" gorm:"uniqueIndex;not null;size:10"`
	Name      string    `json:"name" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
