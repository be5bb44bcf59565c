package partners

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPartnerNotFound = errors.New("partner not found")

type Service interface {
	GetProfile(ctx context.Context, partnerID string) (*PartnerResponse, error)
	SavePushSubscription(ctx context.Context, partnerID string, req SavePushSubscriptionRequest) (*PushSubscription, error)
	RemovePushSubscription(ctx context.Context, endpoint string) error
	GetPushSubscriptions(ctx context.Context, partnerID string) ([]PushSubscription, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, partnerID string) (*PartnerResponse, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	partner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return toPartnerResponse(partner), nil
}

func (s *service) SavePushSubscription(ctx context.Context, partnerID string, req SavePushSubscriptionRequest) (*PushSubscription, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	sub := &PushSubscription{
		PartnerID: id,
		Endpoint:  req.Endpoint,
		P256dh:    req.Keys.P256dh,
		Auth:      req.Keys.Auth,
		UserAgent: req.UserAgent,
	}

	if err := s.repo.SavePushSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save push subscription: %w", err)
	}

	return sub, nil
}

func (s *service) RemovePushSubscription(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errors.New("endpoint is required")
	}
	return s.repo.DeletePushSubscriptionByEndpoint(ctx, endpoint)
}

func (s *service) GetPushSubscriptions(ctx context.Context, partnerID string) ([]PushSubscription, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}
	return s.repo.GetPushSubscriptions(ctx, id)
}
