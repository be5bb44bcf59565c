package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courtside/internal/shared/constants"
	"courtside/pkg/cache"
	"courtside/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrInvalidHours  = errors.New("closing time must be after opening time")
	ErrNotVenueOwner = errors.New("venue belongs to another partner")
)

type Service interface {
	Create(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	GetByID(ctx context.Context, venueID string) (*Venue, error)
	GetByCity(ctx context.Context, city string) ([]Venue, error)
	GetByPartner(ctx context.Context, partnerID string) ([]Venue, error)
	Update(ctx context.Context, venueID, partnerID string, req UpdateVenueRequest) (*Venue, error)
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

func (s *service) Create(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	if req.EndTime <= req.StartTime {
		return nil, ErrInvalidHours
	}

	venue := &Venue{
		PartnerID:   partnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        strings.TrimSpace(req.City),
		Sports:      req.Sports,
		Amenities:   req.Amenities,
		Images:      req.Images,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.invalidateVenueCaches(ctx, venue)
	s.log.LogVenueCreated(ctx, venue.ID.String(), venue.PartnerID.String())

	return venue, nil
}

func (s *service) GetByID(ctx context.Context, venueID string) (*Venue, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	var venue Venue
	cacheKey := constants.BuildVenueDetailKey(venueID)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_VENUE_DETAIL, func() (interface{}, error) {
		v, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return v, nil
	}, &venue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || strings.Contains(err.Error(), "record not found") {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// GetByCity is the hottest read path (home page venue browsing) and is
// served cache-aside with a city-level key.
func (s *service) GetByCity(ctx context.Context, city string) ([]Venue, error) {
	normalized := strings.ToLower(strings.TrimSpace(city))
	if normalized == "" {
		return nil, errors.New("city is required")
	}

	var venues []Venue
	cacheKey := constants.BuildVenuesByCityKey(normalized)
	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_VENUES_BY_CITY, func() (interface{}, error) {
		return s.repo.GetByCity(ctx, normalized)
	}, &venues)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues for city %s: %w", city, err)
	}
	if venues == nil {
		venues = []Venue{}
	}
	return venues, nil
}

func (s *service) GetByPartner(ctx context.Context, partnerID string) ([]Venue, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	var venues []Venue
	cacheKey := constants.BuildVenuesByPartnerKey(partnerID)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_VENUES_BY_PARTNER, func() (interface{}, error) {
		return s.repo.GetByPartner(ctx, id)
	}, &venues)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner venues: %w", err)
	}
	if venues == nil {
		venues = []Venue{}
	}
	return venues, nil
}

func (s *service) Update(ctx context.Context, venueID, partnerID string, req UpdateVenueRequest) (*Venue, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	if venue.PartnerID.String() != partnerID {
		return nil, ErrNotVenueOwner
	}

	if req.Name != nil {
		venue.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Sports != nil {
		venue.Sports = *req.Sports
	}
	if req.Amenities != nil {
		venue.Amenities = *req.Amenities
	}
	if req.Images != nil {
		venue.Images = *req.Images
	}
	if req.StartTime != nil {
		venue.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		venue.EndTime = *req.EndTime
	}
	if venue.EndTime <= venue.StartTime {
		return nil, ErrInvalidHours
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	s.invalidateVenueCaches(ctx, venue)
	return venue, nil
}

// invalidateVenueCaches drops every cached view the venue appears in.
func (s *service) invalidateVenueCaches(ctx context.Context, venue *Venue) {
	keys := []string{
		constants.BuildVenuesByCityKey(strings.ToLower(venue.City)),
		constants.BuildVenuesByPartnerKey(venue.PartnerID.String()),
		constants.BuildVenueDetailKey(venue.ID.String()),
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "venue cache invalidation failed", "key", key, "error", err)
		}
	}
}
