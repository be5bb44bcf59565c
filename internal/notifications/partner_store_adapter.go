package notifications

import (
	"context"

	"courtside/internal/partners"

	"github.com/google/uuid"
)

// PartnerSubscriptionStore adapts the partners repository to the
// SubscriptionStore interface consumed by the push service.
type PartnerSubscriptionStore struct {
	repo partners.Repository
}

func NewPartnerSubscriptionStore(repo partners.Repository) SubscriptionStore {
	return &PartnerSubscriptionStore{repo: repo}
}

func (a *PartnerSubscriptionStore) GetSubscriptions(ctx context.Context, partnerID uuid.UUID) ([]Subscription, error) {
	rows, err := a.repo.GetPushSubscriptions(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	subs := make([]Subscription, len(rows))
	for i, row := range rows {
		subs[i] = Subscription{
			Endpoint: row.Endpoint,
			P256dh:   row.P256dh,
			Auth:     row.Auth,
		}
	}
	return subs, nil
}

func (a *PartnerSubscriptionStore) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return a.repo.DeletePushSubscriptionByEndpoint(ctx, endpoint)
}
