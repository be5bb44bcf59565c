package venues

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetByCity(ctx context.Context, city string) ([]Venue, error)
	GetByPartner(ctx context.Context, partnerID uuid.UUID) ([]Venue, error)
	Update(ctx context.Context, venue *Venue) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// GetByCity matches case-insensitively so "Mumbai" and "mumbai" hit the
// same listing.
func (r *repository) GetByCity(ctx context.Context, city string) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = ?", strings.ToLower(city)).
		Order("name ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *repository) GetByPartner(ctx context.Context, partnerID uuid.UUID) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *repository) Update(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}
