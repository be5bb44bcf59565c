package analytics

import (
	"context"
	"fmt"

	"courtside/internal/bookings"
	"courtside/internal/shared/constants"
	"courtside/pkg/cache"

	"github.com/google/uuid"
)

// PartnerSummary is the dashboard headline card: booking counts by
// display status plus realized revenue.
type PartnerSummary struct {
	TotalBookings  int            `json:"totalBookings"`
	StatusCounts   map[string]int `json:"statusCounts"`
	ConfirmedCount int            `json:"confirmedCount"`
	PendingCount   int            `json:"pendingCount"`
	Revenue        float64        `json:"revenue"` // confirmed-group bookings only
	VenueNames     []string       `json:"venueNames"`
}

type Service interface {
	GetPartnerSummary(ctx context.Context, partnerID string) (*PartnerSummary, error)
}

type service struct {
	bookingRepo bookings.Repository
	cache       cache.Service
}

func NewService(bookingRepo bookings.Repository, cacheService cache.Service) Service {
	return &service{
		bookingRepo: bookingRepo,
		cache:       cacheService,
	}
}

func (s *service) GetPartnerSummary(ctx context.Context, partnerID string) (*PartnerSummary, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	var summary PartnerSummary
	cacheKey := constants.BuildPartnerSummaryKey(partnerID)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_PARTNER_SUMMARY, func() (interface{}, error) {
		list, err := s.bookingRepo.GetByPartner(ctx, id)
		if err != nil {
			return nil, err
		}
		return buildSummary(list), nil
	}, &summary)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner summary: %w", err)
	}
	return &summary, nil
}

func buildSummary(list []bookings.Booking) *PartnerSummary {
	confirmed, pending := bookings.Partition(list)

	summary := &PartnerSummary{
		TotalBookings:  len(list),
		StatusCounts:   make(map[string]int),
		ConfirmedCount: len(confirmed),
		PendingCount:   len(pending),
		VenueNames:     bookings.VenueNameFacet(list),
	}

	for _, b := range list {
		summary.StatusCounts[b.DisplayStatus()]++
	}
	for _, b := range confirmed {
		summary.Revenue += b.Amount
	}

	return summary
}
