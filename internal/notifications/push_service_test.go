package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
)

type fakeSubscriptionStore struct {
	subs    []Subscription
	deleted []string
}

func (f *fakeSubscriptionStore) GetSubscriptions(ctx context.Context, partnerID uuid.UUID) ([]Subscription, error) {
	return f.subs, nil
}

func (f *fakeSubscriptionStore) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	f.deleted = append(f.deleted, endpoint)
	return nil
}

func newTestPushService(t *testing.T, store SubscriptionStore) *webPushService {
	t.Helper()
	svc, err := NewWebPushService(&WebPushConfig{
		VAPIDPublicKey:  "test-public",
		VAPIDPrivateKey: "test-private",
		Subscriber:      "mailto:support@courtside.app",
	}, store)
	if err != nil {
		t.Fatalf("NewWebPushService() error = %v", err)
	}
	return svc.(*webPushService)
}

func TestSendNotificationBodyIsFlatPayload(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []Subscription{{Endpoint: "https://push.example/ep1", P256dh: "k", Auth: "a"}},
	}
	svc := newTestPushService(t, store)

	var body []byte
	svc.send = func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		body = message
		return &http.Response{StatusCode: 201, Body: http.NoBody}, nil
	}

	n := NewNotificationBuilder().
		WithType(NotificationTypeNewBooking).
		WithPartner(uuid.New()).
		WithContent("New Booking Received", "Arena Turf Park booked for 2025-03-01 · ₹1200").
		WithIcons("/icons/icon-192.png", "/icons/badge-72.png").
		WithBookingContext("b-1", "Arena Turf Park", "2025-03-01", 1200).
		Build()

	if err := svc.SendNotification(context.Background(), n); err != nil {
		t.Fatalf("SendNotification() error = %v", err)
	}
	if body == nil {
		t.Fatal("no push body was sent")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("push body is not JSON: %v", err)
	}

	// The service worker reads these at the top level.
	for _, key := range []string{"title", "body", "icon", "badge", "type", "bookingId", "venueName", "date", "amount"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("push body missing top-level field %q", key)
		}
	}
	// Delivery bookkeeping must never leak onto the wire.
	for _, key := range []string{"payload", "status", "retry_count", "partner_id", "max_retries"} {
		if _, ok := raw[key]; ok {
			t.Errorf("push body leaks pipeline field %q", key)
		}
	}

	if raw["title"] != "New Booking Received" || raw["venueName"] != "Arena Turf Park" {
		t.Errorf("push body content mismatch: %v", raw)
	}
}

func TestSendNotificationPrunesGoneEndpoints(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []Subscription{
			{Endpoint: "https://push.example/gone", P256dh: "k", Auth: "a"},
			{Endpoint: "https://push.example/live", P256dh: "k", Auth: "a"},
		},
	}
	svc := newTestPushService(t, store)

	svc.send = func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		if s.Endpoint == "https://push.example/gone" {
			return &http.Response{StatusCode: 410, Body: http.NoBody}, nil
		}
		return &http.Response{StatusCode: 201, Body: http.NoBody}, nil
	}

	n := NewNotificationBuilder().WithPartner(uuid.New()).Build()
	if err := svc.SendNotification(context.Background(), n); err != nil {
		t.Fatalf("SendNotification() error = %v", err)
	}

	if len(store.deleted) != 1 || store.deleted[0] != "https://push.example/gone" {
		t.Errorf("pruned endpoints = %v, want the gone endpoint only", store.deleted)
	}
}

func TestSendNotificationNoSubscriptionsIsNotAnError(t *testing.T) {
	svc := newTestPushService(t, &fakeSubscriptionStore{})

	svc.send = func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		t.Fatal("send must not be called with zero subscriptions")
		return nil, nil
	}

	n := NewNotificationBuilder().WithPartner(uuid.New()).Build()
	if err := svc.SendNotification(context.Background(), n); err != nil {
		t.Errorf("SendNotification() error = %v, want nil", err)
	}
}
