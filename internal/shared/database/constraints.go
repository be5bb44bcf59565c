package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// A venue cannot expose two slots with the same start time on the same day
	err := db.Exec(`
		ALTER TABLE slots
		ADD CONSTRAINT IF NOT EXISTS unique_slot_per_venue_day
		UNIQUE (venue_id, date, start_time);
	`).Error
	if err != nil {
		return err
	}

	// Index for slot availability queries
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_slots_venue_date
		ON slots (venue_id, date);
	`).Error
	if err != nil {
		return err
	}

	// Index for partner booking dashboards (bookings joined through venues)
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_venue_date
		ON bookings (venue_id, date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
