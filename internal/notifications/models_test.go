package notifications

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNotificationBuilder(t *testing.T) {
	partnerID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	n := NewNotificationBuilder().
		WithType(NotificationTypeNewBooking).
		WithPartner(partnerID).
		WithContent("New Booking Received", "Arena Turf Park booked for 2025-03-01 · ₹1200").
		WithIcons("/icons/icon-192.png", "/icons/badge-72.png").
		WithBookingContext("booking-1", "Arena Turf Park", "2025-03-01", 1200).
		WithExpiration(expiry).
		WithMaxRetries(5).
		Build()

	if n.ID == uuid.Nil {
		t.Error("builder did not assign an ID")
	}
	if n.Status != NotificationStatusPending {
		t.Errorf("status = %s, want PENDING", n.Status)
	}
	if n.Type != NotificationTypeNewBooking {
		t.Errorf("type = %s, want NEW_BOOKING", n.Type)
	}
	if n.Payload.Type != string(NotificationTypeNewBooking) {
		t.Errorf("payload type = %q, want %q", n.Payload.Type, NotificationTypeNewBooking)
	}
	if n.PartnerID != partnerID {
		t.Errorf("partnerID = %s, want %s", n.PartnerID, partnerID)
	}
	if n.Payload.VenueName != "Arena Turf Park" || n.Payload.Amount != 1200 {
		t.Errorf("booking context not applied: %+v", n.Payload)
	}
	if n.MaxRetries != 5 {
		t.Errorf("maxRetries = %d, want 5", n.MaxRetries)
	}
	if n.ExpiresAt == nil || !n.ExpiresAt.Equal(expiry) {
		t.Errorf("expiresAt = %v, want %v", n.ExpiresAt, expiry)
	}
}

func TestGetPartitionKey(t *testing.T) {
	partnerID := uuid.New()
	n := NewNotificationBuilder().WithPartner(partnerID).Build()

	if got := n.GetPartitionKey(); got != partnerID.String() {
		t.Errorf("partition key = %q, want %q", got, partnerID.String())
	}
}

func TestPushPayloadWireFormat(t *testing.T) {
	// The service worker reads these exact field names.
	payload := PushPayload{
		Title:     "New Booking Received",
		Body:      "body",
		Icon:      "/icons/icon-192.png",
		Badge:     "/icons/badge-72.png",
		Type:      "NEW_BOOKING",
		BookingID: "b-1",
		VenueName: "Arena",
		Date:      "2025-03-01",
		Amount:    800,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"title", "body", "icon", "badge", "type", "bookingId", "venueName", "date", "amount"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("payload JSON missing field %q", key)
		}
	}
}

func TestIsExpired(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Minute)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry", nil, false},
		{"future expiry", &future, false},
		{"past expiry", &past, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &PushNotification{ExpiresAt: tt.expiresAt}
			if got := n.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkSentAndFailed(t *testing.T) {
	n := NewNotificationBuilder().Build()

	n.MarkSent()
	if n.Status != NotificationStatusSent || n.SentAt == nil {
		t.Errorf("after MarkSent: status = %s, sentAt = %v", n.Status, n.SentAt)
	}

	n.MarkFailed(errors.New("endpoint gone"))
	if n.Status != NotificationStatusFailed {
		t.Errorf("after MarkFailed: status = %s", n.Status)
	}
	if n.LastError == nil || *n.LastError != "endpoint gone" {
		t.Errorf("lastError = %v, want 'endpoint gone'", n.LastError)
	}
}
