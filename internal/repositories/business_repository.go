package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loyalty/internal/models/db_models"
)

type BusinessRepository interface {
	Insert(ctx context.Context, business *db_models.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Business, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Business, error)
	ListAll(ctx context.Context) ([]db_models.Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

func (b *businessRepository) Insert(ctx context.Context, business *db_models.Business) error {
	return b.db.WithContext(ctx).Create(business).Error
}

func (b *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Business, error) {
	var business db_models.Business
	err := b.db.WithContext(ctx).Preload("Plan").First(&business, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &business, nil
}

func (b *businessRepository) FindByEmail(ctx context.Context, email string) (*db_models.Business, error) {
	var business db_models.Business
	err := b.db.WithContext(ctx).Preload("Plan").First(&business, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &business, nil
}

func (b *businessRepository) ListAll(ctx context.Context) ([]db_models.Business, error) {
	var businesses []db_models.Business
	err := b.db.WithContext(ctx).Preload("Plan").Order("created_at DESC").Find(&businesses).Error
	return businesses, err
}

func (b *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return b.db.WithContext(ctx).Delete(&db_models.Business{}, "id = ?", id).Error
}
