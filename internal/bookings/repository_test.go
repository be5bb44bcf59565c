package bookings

import (
	"strings"
	"testing"

	"courtside/internal/slots"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestSlotLockQueryEmitsForUpdate(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("failed to open dry-run session: %v", err)
	}

	var locked []slots.Slot
	stmt := slotLockQuery(db, []uuid.UUID{uuid.New(), uuid.New()}).Find(&locked).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Errorf("slot lock query does not lock rows: %q", sql)
	}
	if !strings.Contains(sql, "IN") {
		t.Errorf("slot lock query does not filter by slot IDs: %q", sql)
	}
}

func TestCancelledStatusTripleNeverConfirmed(t *testing.T) {
	// The exact field triple CancelWithSlotRelease writes. A cancelled
	// booking whose slots are released back for sale must not classify
	// as confirmed anywhere, even if it was paid before cancellation.
	b := Booking{
		BookingStatus: BookingStatusCancelled,
		PaymentStatus: PaymentStatusFailed,
		Status:        "",
	}

	if got := b.DisplayStatus(); got != DisplayCancelled {
		t.Errorf("DisplayStatus() = %q, want %q", got, DisplayCancelled)
	}
	if b.InConfirmedGroup() {
		t.Error("cancelled booking counted in the confirmed group")
	}

	confirmed, pending := Partition([]Booking{b})
	if len(confirmed) != 0 || len(pending) != 1 {
		t.Errorf("Partition() = %d confirmed, %d pending; want 0 and 1", len(confirmed), len(pending))
	}
}
