package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loyalty/internal/models/db_models"
)

type CustomerRepository interface {
	Insert(ctx context.Context, customer *db_models.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Customer, error)
	FindByBusinessAndEmail(ctx context.Context, businessID uuid.UUID, email string) (*db_models.Customer, error)
	FindByBusinessAndPhone(ctx context.Context, businessID uuid.UUID, phone string) (*db_models.Customer, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]db_models.Customer, error)
	ListWithTokens(ctx context.Context, businessID *uuid.UUID) ([]db_models.Customer, error)
	UpdateContact(ctx context.Context, id uuid.UUID, name string, phone *string) error
	UpdateRewardType(ctx context.Context, id uuid.UUID, rewardType db_models.RewardType) (bool, error)
	AssignWalletSerial(ctx context.Context, id uuid.UUID, serial string) error
	ForEachBatch(ctx context.Context, batchSize int, fn func(batch []db_models.Customer) error) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func (c *customerRepository) Insert(ctx context.Context, customer *db_models.Customer) error {
	return c.db.WithContext(ctx).Create(customer).Error
}

func (c *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := c.db.WithContext(ctx).First(&customer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (c *customerRepository) FindByBusinessAndEmail(ctx context.Context, businessID uuid.UUID, email string) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := c.db.WithContext(ctx).
		First(&customer, "business_id = ? AND email = ?", businessID, email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (c *customerRepository) FindByBusinessAndPhone(ctx context.Context, businessID uuid.UUID, phone string) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := c.db.WithContext(ctx).
		First(&customer, "business_id = ? AND phone = ?", businessID, phone).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (c *customerRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]db_models.Customer, error) {
	var customers []db_models.Customer
	err := c.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&customers).Error
	return customers, err
}

// ListWithTokens returns customers that registered a push token. A nil
// businessID means every business (admin broadcast).
func (c *customerRepository) ListWithTokens(ctx context.Context, businessID *uuid.UUID) ([]db_models.Customer, error) {
	query := c.db.WithContext(ctx).Where("fcm_token IS NOT NULL")
	if businessID != nil {
		query = query.Where("business_id = ?", *businessID)
	}

	var customers []db_models.Customer
	err := query.Find(&customers).Error
	return customers, err
}

func (c *customerRepository) UpdateContact(ctx context.Context, id uuid.UUID, name string, phone *string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if phone != nil && *phone != "" {
		updates["phone"] = *phone
	}
	if len(updates) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).
		Model(&db_models.Customer{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateRewardType reports whether a row was actually updated so callers can
// distinguish a missing customer from a no-op.
func (c *customerRepository) UpdateRewardType(ctx context.Context, id uuid.UUID, rewardType db_models.RewardType) (bool, error) {
	result := c.db.WithContext(ctx).
		Model(&db_models.Customer{}).
		Where("id = ?", id).
		Update("reward_type", rewardType)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (c *customerRepository) AssignWalletSerial(ctx context.Context, id uuid.UUID, serial string) error {
	return c.db.WithContext(ctx).
		Model(&db_models.Customer{}).
		Where("id = ? AND wallet_serial IS NULL", id).
		Update("wallet_serial", serial).Error
}

// ForEachBatch streams every customer row through fn in fixed-size batches so
// the sweep never loads the whole table at once.
func (c *customerRepository) ForEachBatch(ctx context.Context, batchSize int, fn func(batch []db_models.Customer) error) error {
	var customers []db_models.Customer
	return c.db.WithContext(ctx).
		FindInBatches(&customers, batchSize, func(tx *gorm.DB, batch int) error {
			return fn(customers)
		}).Error
}
