package database

import (
	"courtside/internal/bookings"
	"courtside/internal/partners"
	"courtside/internal/slots"
	"courtside/internal/users"
	"courtside/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&users.User{},
		&partners.Partner{},
		&partners.PushSubscription{},
		&venues.Venue{},
		&slots.Slot{},
		&bookings.Booking{},
		&bookings.BookingSlot{},
	)
	if err != nil {
		return err
	}
	return MigrateConstraints(db)
}
