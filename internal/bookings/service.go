package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtside/internal/shared/constants"
	"courtside/internal/users"
	"courtside/pkg/cache"
	"courtside/pkg/logger"

	"github.com/google/uuid"
)

// BookingCreatedEvent is handed to the notification pipeline when a
// booking lands, so the venue's partner gets a push on their dashboard.
type BookingCreatedEvent struct {
	BookingID string  `json:"bookingId"`
	PartnerID string  `json:"partnerId"`
	VenueName string  `json:"venueName"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Mobile    string  `json:"mobile"`
}

// Notifier publishes booking events to the notification pipeline. Wired
// in the router with an adapter to avoid an import cycle with the
// notifications package.
type Notifier interface {
	PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*BookingView, error)
	GetPartnerView(ctx context.Context, partnerID string, query ViewQuery) (*BookingListResponse, error)
	GetUserView(ctx context.Context, mobile string, query ViewQuery) (*BookingListResponse, error)
	Confirm(ctx context.Context, bookingID string) (*BookingView, error)
	Cancel(ctx context.Context, bookingID string) error
	ExportPartnerCSV(ctx context.Context, partnerID string, query ViewQuery) ([]byte, string, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
	cache    cache.Service
	notifier Notifier
	log      *logger.Logger
}

func NewService(repo Repository, userRepo users.Repository, cacheService cache.Service, notifier Notifier) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		cache:    cacheService,
		notifier: notifier,
		log:      logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*BookingView, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	slotIDs := make([]uuid.UUID, len(req.SlotIDs))
	for i, raw := range req.SlotIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid slot ID %q: %w", raw, err)
		}
		slotIDs[i] = id
	}

	// The user row is created lazily on first booking.
	user, err := s.userRepo.GetOrCreateByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	if req.CustomerName != "" && user.Name == "" {
		_ = s.userRepo.UpdateName(ctx, req.Mobile, req.CustomerName)
	}

	booking := &Booking{
		VenueID:              venueID,
		Mobile:               req.Mobile,
		CustomerName:         req.CustomerName,
		Date:                 req.Date,
		BookingStatus:        BookingStatusInitiated,
		PaymentStatus:        PaymentStatusPending,
		PaymentScreenshotURL: req.PaymentScreenshotURL,
	}

	if err := s.repo.CreateWithSlotLock(ctx, booking, slotIDs); err != nil {
		return nil, err
	}

	// Reload with the venue association for the response and the event.
	created, err := s.repo.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.invalidateBookingCaches(ctx, created)
	s.log.LogBookingCreated(ctx, created.ID.String(), created.VenueID.String(), created.Mobile)

	if s.notifier != nil && created.Venue != nil {
		event := BookingCreatedEvent{
			BookingID: created.ID.String(),
			PartnerID: created.Venue.PartnerID.String(),
			VenueName: created.Venue.Name,
			Date:      created.Date,
			Amount:    created.Amount,
			Mobile:    created.Mobile,
		}
		// Notification delivery is best-effort; the booking stands even
		// if the broker is down.
		if err := s.notifier.PublishBookingCreated(ctx, event); err != nil {
			s.log.ErrorWithContext(ctx, "failed to publish booking notification", err, map[string]interface{}{
				"booking_id": event.BookingID,
			})
		}
	}

	return &BookingView{Booking: *created, DisplayStatus: created.DisplayStatus()}, nil
}

func (s *service) GetPartnerView(ctx context.Context, partnerID string, query ViewQuery) (*BookingListResponse, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid partner ID: %w", err)
	}

	// The raw list is cached; filtering and sorting are cheap pure
	// functions applied per request.
	var list []Booking
	cacheKey := constants.BuildPartnerBookingsKey(partnerID)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_PARTNER_BOOKINGS, func() (interface{}, error) {
		return s.repo.GetByPartner(ctx, id)
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner bookings: %w", err)
	}

	return toListResponse(DeriveView(list, query.toOptions())), nil
}

func (s *service) GetUserView(ctx context.Context, mobile string, query ViewQuery) (*BookingListResponse, error) {
	var list []Booking
	cacheKey := constants.BuildUserBookingsKey(mobile)
	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_USER_BOOKINGS, func() (interface{}, error) {
		return s.repo.GetByUserMobile(ctx, mobile)
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}

	return toListResponse(DeriveView(list, query.toOptions())), nil
}

// Confirm marks a booking paid after the partner verifies the payment.
func (s *service) Confirm(ctx context.Context, bookingID string) (*BookingView, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	err = s.repo.UpdateStatuses(ctx, id, BookingStatusPaid, PaymentStatusSuccess, StatusSuccess)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateBookingCaches(ctx, booking)

	return &BookingView{Booking: *booking, DisplayStatus: booking.DisplayStatus()}, nil
}

func (s *service) Cancel(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.DisplayStatus() == DisplayCancelled {
		return errors.New("booking is already cancelled")
	}

	if err := s.repo.CancelWithSlotRelease(ctx, booking); err != nil {
		return err
	}

	s.invalidateBookingCaches(ctx, booking)
	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.VenueID.String())
	return nil
}

func (s *service) ExportPartnerCSV(ctx context.Context, partnerID string, query ViewQuery) ([]byte, string, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, "", fmt.Errorf("invalid partner ID: %w", err)
	}

	list, err := s.repo.GetByPartner(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get partner bookings: %w", err)
	}

	view := DeriveView(list, query.toOptions())
	return ExportCSV(view.Filtered, time.Now())
}

// invalidateBookingCaches drops the cached lists and availability the
// booking touches: partner dashboard, user history, slot availability
// and the partner's analytics summary.
func (s *service) invalidateBookingCaches(ctx context.Context, booking *Booking) {
	keys := []string{
		constants.BuildUserBookingsKey(booking.Mobile),
		constants.BuildSlotsKey(booking.VenueID.String(), booking.Date),
	}
	if booking.Venue != nil {
		partnerID := booking.Venue.PartnerID.String()
		keys = append(keys,
			constants.BuildPartnerBookingsKey(partnerID),
			constants.BuildPartnerSummaryKey(partnerID),
		)
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "booking cache invalidation failed", "key", key, "error", err)
		}
	}
}
