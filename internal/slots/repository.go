package slots

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateBatch(ctx context.Context, batch []Slot) error
	GetByVenueAndDate(ctx context.Context, venueID uuid.UUID, date string) ([]Slot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Slot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, batch []Slot) error {
	return r.db.WithContext(ctx).Create(&batch).Error
}

func (r *repository) GetByVenueAndDate(ctx context.Context, venueID uuid.UUID, date string) ([]Slot, error) {
	var result []Slot
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND date = ?", venueID, date).
		Order("start_time ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Slot, error) {
	var slot Slot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Slot{}).Error
}
