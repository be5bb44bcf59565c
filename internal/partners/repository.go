package partners

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, partner *Partner) error
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	GetByEmail(ctx context.Context, email string) (*Partner, error)

	// Push subscription management
	SavePushSubscription(ctx context.Context, sub *PushSubscription) error
	GetPushSubscriptions(ctx context.Context, partnerID uuid.UUID) ([]PushSubscription, error)
	DeletePushSubscriptionByEndpoint(ctx context.Context, endpoint string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, partner *Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	var partner Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Partner, error) {
	var partner Partner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&partner).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// SavePushSubscription upserts on endpoint: a browser that re-registers
// after a key rotation overwrites its previous keys instead of duplicating.
func (r *repository) SavePushSubscription(ctx context.Context, sub *PushSubscription) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"partner_id", "p256dh", "auth", "user_agent",
			}),
		}).
		Create(sub).Error
}

func (r *repository) GetPushSubscriptions(ctx context.Context, partnerID uuid.UUID) ([]PushSubscription, error) {
	var subs []PushSubscription
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *repository) DeletePushSubscriptionByEndpoint(ctx context.Context, endpoint string) error {
	return r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&PushSubscription{}).Error
}
