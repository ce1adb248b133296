package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"loyalty/internal/models/db_models"
)

type WalletRepository interface {
	FindByOwner(ctx context.Context, businessID, customerID uuid.UUID) (*db_models.Wallet, error)
	// EnsureExists lazily creates the wallet row on first registration. Safe
	// under concurrent registration of the same customer.
	EnsureExists(ctx context.Context, businessID, customerID uuid.UUID) (*db_models.Wallet, error)
	SavePassData(ctx context.Context, walletID uuid.UUID, passData datatypes.JSON) error
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{
		db: db,
	}
}

func (w *walletRepository) FindByOwner(ctx context.Context, businessID, customerID uuid.UUID) (*db_models.Wallet, error) {
	var wallet db_models.Wallet
	err := w.db.WithContext(ctx).
		First(&wallet, "business_id = ? AND customer_id = ?", businessID, customerID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &wallet, nil
}

func (w *walletRepository) EnsureExists(ctx context.Context, businessID, customerID uuid.UUID) (*db_models.Wallet, error) {
	wallet := db_models.Wallet{
		BusinessID: businessID,
		CustomerID: customerID,
	}
	result := w.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&wallet)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return &wallet, nil
	}

	return w.FindByOwner(ctx, businessID, customerID)
}

func (w *walletRepository) SavePassData(ctx context.Context, walletID uuid.UUID, passData datatypes.JSON) error {
	return w.db.WithContext(ctx).
		Model(&db_models.Wallet{}).
		Where("id = ?", walletID).
		Update("pass_data", passData).Error
}
