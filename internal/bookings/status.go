package bookings

import "strings"

// Display statuses shown to users and partners.
const (
	DisplayConfirmed = "Confirmed"
	DisplayCompleted = "Completed"
	DisplayCancelled = "Cancelled"
	DisplayPending   = "Pending"
)

// ClassifyDisplayStatus maps the raw backend status pair to a display
// status. Decision order matters: a booking that is both PAID and FAILED
// resolves in favor of the earlier rule.
//
// Unknown status pairs fall back to the raw (uppercased) bookingStatus,
// then paymentStatus, then "Pending".
func ClassifyDisplayStatus(bookingStatus, paymentStatus string) string {
	bs := strings.ToUpper(strings.TrimSpace(bookingStatus))
	ps := strings.ToUpper(strings.TrimSpace(paymentStatus))

	switch {
	case bs == BookingStatusPaid || ps == PaymentStatusSuccess:
		return DisplayConfirmed
	case bs == BookingStatusCompleted:
		return DisplayCompleted
	case bs == BookingStatusCancelled || ps == PaymentStatusFailed:
		return DisplayCancelled
	case bs == BookingStatusInitiated || ps == PaymentStatusPending:
		return DisplayPending
	case bs != "":
		return bs
	case ps != "":
		return ps
	default:
		return DisplayPending
	}
}

// DisplayStatus derives the booking's display status.
func (b *Booking) DisplayStatus() string {
	return ClassifyDisplayStatus(b.BookingStatus, b.PaymentStatus)
}

// InConfirmedGroup reports whether the booking belongs to the confirmed
// column of the dual-column dashboard view.
//
// This is intentionally NOT the same predicate as ClassifyDisplayStatus
// returning "Confirmed": grouping additionally inspects the generic
// Status field and counts COMPLETED bookings as confirmed. The two
// classifications are driven by different UI surfaces and can disagree
// on edge-case records.
func (b *Booking) InConfirmedGroup() bool {
	status := strings.ToUpper(strings.TrimSpace(b.Status))
	bs := strings.ToUpper(strings.TrimSpace(b.BookingStatus))
	ps := strings.ToUpper(strings.TrimSpace(b.PaymentStatus))

	return status == StatusSuccess ||
		ps == PaymentStatusSuccess ||
		bs == BookingStatusPaid ||
		bs == BookingStatusCompleted
}

// Partition splits bookings into the confirmed and pending display
// groups. The groups are disjoint and together cover the input.
func Partition(list []Booking) (confirmed, pending []Booking) {
	confirmed = make([]Booking, 0, len(list))
	pending = make([]Booking, 0, len(list))
	for _, b := range list {
		if b.InConfirmedGroup() {
			confirmed = append(confirmed, b)
		} else {
			pending = append(pending, b)
		}
	}
	return confirmed, pending
}
