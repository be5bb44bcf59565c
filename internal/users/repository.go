package users

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetByMobile(ctx context.Context, mobile string) (*User, error)
	GetOrCreateByMobile(ctx context.Context, mobile string) (*User, error)
	UpdateName(ctx context.Context, mobile, name string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByMobile(ctx context.Context, mobile string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateByMobile upserts the user row for a mobile. Concurrent first
// logins for the same mobile are resolved by the unique index.
func (r *repository) GetOrCreateByMobile(ctx context.Context, mobile string) (*User, error) {
	user, err := r.GetByMobile(ctx, mobile)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &User{Mobile: mobile}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mobile"}},
			DoNothing: true,
		}).
		Create(created).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller always sees the persisted row, including the
	// conflict case where another request won the insert.
	return r.GetByMobile(ctx, mobile)
}

func (r *repository) UpdateName(ctx context.Context, mobile, name string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("mobile = ?", mobile).
		Update("name", name).Error
}
