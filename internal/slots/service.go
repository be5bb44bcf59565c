package slots

import (
	"context"
	"errors"
	"fmt"

	"courtside/internal/shared/constants"
	"courtside/pkg/cache"
	"courtside/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotBooked      = errors.New("cannot delete a booked slot")
	ErrInvalidWindow   = errors.New("slot end time must be after start time")
	ErrDuplicateWindow = errors.New("duplicate slot start time for venue and date")
)

type Service interface {
	CreateSlots(ctx context.Context, req CreateSlotsRequest) ([]Slot, error)
	GetSlots(ctx context.Context, venueID, date string) ([]Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   logger.GetDefault(),
	}
}

func (s *service) CreateSlots(ctx context.Context, req CreateSlotsRequest) ([]Slot, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	seen := make(map[string]bool, len(req.Slots))
	batch := make([]Slot, 0, len(req.Slots))
	for _, in := range req.Slots {
		if in.EndTime <= in.StartTime {
			return nil, ErrInvalidWindow
		}
		if seen[in.StartTime] {
			return nil, ErrDuplicateWindow
		}
		seen[in.StartTime] = true

		batch = append(batch, Slot{
			VenueID:   venueID,
			Date:      req.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Price:     in.Price,
		})
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		// The unique (venue_id, date, start_time) constraint catches
		// windows that already exist in the database.
		return nil, fmt.Errorf("failed to create slots: %w", err)
	}

	s.invalidateSlotCache(ctx, req.VenueID, req.Date)

	return batch, nil
}

func (s *service) GetSlots(ctx context.Context, venueID, date string) ([]Slot, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	var result []Slot
	cacheKey := constants.BuildSlotsKey(venueID, date)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_SLOTS_BY_VENUE_DATE, func() (interface{}, error) {
		return s.repo.GetByVenueAndDate(ctx, id, date)
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	if result == nil {
		result = []Slot{}
	}
	return result, nil
}

func (s *service) DeleteSlot(ctx context.Context, slotID string) error {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return fmt.Errorf("invalid slot ID: %w", err)
	}

	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}

	if slot.IsBooked {
		return ErrSlotBooked
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	s.invalidateSlotCache(ctx, slot.VenueID.String(), slot.Date)
	return nil
}

func (s *service) invalidateSlotCache(ctx context.Context, venueID, date string) {
	key := constants.BuildSlotsKey(venueID, date)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "slot cache invalidation failed", "key", key, "error", err)
	}
}
