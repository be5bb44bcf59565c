package bookings

import "testing"

func TestClassifyDisplayStatus(t *testing.T) {
	tests := []struct {
		name          string
		bookingStatus string
		paymentStatus string
		want          string
	}{
		{"paid wins regardless of payment", "PAID", "FAILED", DisplayConfirmed},
		{"payment success confirms", "", "SUCCESS", DisplayConfirmed},
		{"completed", "COMPLETED", "", DisplayCompleted},
		{"cancelled", "CANCELLED", "", DisplayCancelled},
		{"payment failed cancels", "", "FAILED", DisplayCancelled},
		{"initiated is pending", "INITIATED", "", DisplayPending},
		{"payment pending is pending", "", "PENDING", DisplayPending},
		{"both empty defaults to pending", "", "", DisplayPending},
		{"conflicting cancelled vs success resolves to confirmed", "CANCELLED", "SUCCESS", DisplayConfirmed},
		{"lowercase input is normalized", "paid", "", DisplayConfirmed},
		{"whitespace is trimmed", "  PAID  ", "", DisplayConfirmed},
		{"unknown booking status passes through uppercased", "refund_requested", "", "REFUND_REQUESTED"},
		{"unknown payment status used when booking status empty", "", "on_hold", "ON_HOLD"},
		{"completed beats payment failed", "COMPLETED", "FAILED", DisplayCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDisplayStatus(tt.bookingStatus, tt.paymentStatus)
			if got != tt.want {
				t.Errorf("ClassifyDisplayStatus(%q, %q) = %q, want %q",
					tt.bookingStatus, tt.paymentStatus, got, tt.want)
			}
		})
	}
}

func TestClassifyPaidAlwaysConfirmed(t *testing.T) {
	// Property: PAID confirms regardless of the payment status.
	for _, ps := range []string{"", "PENDING", "SUCCESS", "FAILED", "garbage"} {
		if got := ClassifyDisplayStatus("PAID", ps); got != DisplayConfirmed {
			t.Errorf("ClassifyDisplayStatus(PAID, %q) = %q, want Confirmed", ps, got)
		}
	}
}

func TestInConfirmedGroup(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"generic status success", Booking{Status: "SUCCESS"}, true},
		{"payment success", Booking{PaymentStatus: "SUCCESS"}, true},
		{"booking paid", Booking{BookingStatus: "PAID"}, true},
		{"booking completed", Booking{BookingStatus: "COMPLETED"}, true},
		{"initiated is pending group", Booking{BookingStatus: "INITIATED"}, false},
		{"cancelled is pending group", Booking{BookingStatus: "CANCELLED"}, false},
		{"empty is pending group", Booking{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.InConfirmedGroup(); got != tt.want {
				t.Errorf("InConfirmedGroup() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The grouping predicate and the display classifier deliberately
// disagree on COMPLETED bookings: the chip shows "Completed" while the
// dashboard groups them under confirmed.
func TestGroupingDivergesFromDisplayStatus(t *testing.T) {
	b := Booking{BookingStatus: "COMPLETED"}
	if b.DisplayStatus() != DisplayCompleted {
		t.Fatalf("DisplayStatus() = %q, want Completed", b.DisplayStatus())
	}
	if !b.InConfirmedGroup() {
		t.Fatal("InConfirmedGroup() = false, want true for COMPLETED")
	}
}

func TestPartition(t *testing.T) {
	input := []Booking{
		{BookingStatus: "PAID"},
		{BookingStatus: "INITIATED"},
		{PaymentStatus: "SUCCESS"},
		{BookingStatus: "CANCELLED"},
	}

	confirmed, pending := Partition(input)

	if len(confirmed) != 2 {
		t.Errorf("confirmed group has %d bookings, want 2", len(confirmed))
	}
	if len(pending) != 2 {
		t.Errorf("pending group has %d bookings, want 2", len(pending))
	}
	if len(confirmed)+len(pending) != len(input) {
		t.Errorf("groups are not a partition: %d + %d != %d",
			len(confirmed), len(pending), len(input))
	}
}
