package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
)

// Subscription is a browser push endpoint with its encryption keys.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// SubscriptionStore looks up and prunes partner push subscriptions.
// Implemented by an adapter over the partners repository to avoid an
// import cycle.
type SubscriptionStore interface {
	GetSubscriptions(ctx context.Context, partnerID uuid.UUID) ([]Subscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

// PushService delivers a notification to every browser the partner has
// registered.
type PushService interface {
	SendNotification(ctx context.Context, notification *PushNotification) error
}

// WebPushConfig carries the VAPID key pair identifying this server to
// browser push services.
type WebPushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string // mailto: contact
	TTLSeconds      int
}

// webPushSender matches webpush.SendNotificationWithContext; swapped in
// tests to capture the exact bytes handed to the push service.
type webPushSender func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

type webPushService struct {
	config *WebPushConfig
	store  SubscriptionStore
	send   webPushSender
}

func NewWebPushService(config *WebPushConfig, store SubscriptionStore) (PushService, error) {
	if config.VAPIDPublicKey == "" || config.VAPIDPrivateKey == "" {
		return nil, fmt.Errorf("VAPID key pair is required for web push delivery")
	}
	if config.TTLSeconds <= 0 {
		config.TTLSeconds = 60 * 60 // push services may hold undelivered messages an hour
	}
	return &webPushService{
		config: config,
		store:  store,
		send:   webpush.SendNotificationWithContext,
	}, nil
}

// SendNotification fans the payload out to all of the partner's
// subscriptions. Endpoints the push service reports as gone (404/410)
// are pruned. Delivery succeeds if at least one endpoint accepts; a
// partner with zero subscriptions is not an error.
func (s *webPushService) SendNotification(ctx context.Context, notification *PushNotification) error {
	subs, err := s.store.GetSubscriptions(ctx, notification.PartnerID)
	if err != nil {
		return fmt.Errorf("failed to load push subscriptions: %w", err)
	}

	if len(subs) == 0 {
		log.Printf("🔕 Partner %s has no push subscriptions, dropping notification %s",
			notification.PartnerID, notification.ID)
		return nil
	}

	// The service worker receives the flat payload, never the pipeline
	// envelope with its delivery bookkeeping.
	payload, err := json.Marshal(notification.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	var delivered, pruned int
	var lastErr error
	for _, sub := range subs {
		resp, err := s.send(ctx, payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, &webpush.Options{
			Subscriber:      s.config.Subscriber,
			VAPIDPublicKey:  s.config.VAPIDPublicKey,
			VAPIDPrivateKey: s.config.VAPIDPrivateKey,
			TTL:             s.config.TTLSeconds,
		})
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()

		switch {
		case resp.StatusCode == 404 || resp.StatusCode == 410:
			// The browser unsubscribed; drop the dead endpoint.
			if err := s.store.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
				log.Printf("🔕 Failed to prune dead push endpoint: %v", err)
			}
			pruned++
		case resp.StatusCode >= 400:
			lastErr = fmt.Errorf("push service returned status %d", resp.StatusCode)
		default:
			delivered++
		}
	}

	log.Printf("🔔 Push notification %s: %d delivered, %d pruned of %d subscriptions",
		notification.ID, delivered, pruned, len(subs))

	if delivered == 0 && lastErr != nil {
		return fmt.Errorf("push delivery failed for all endpoints: %w", lastErr)
	}
	return nil
}
