package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"loyalty/internal/models/db_models"
	"loyalty/pkg/utils"
)

// ScanLocator identifies the customer a scan targets: either an internal id or
// a (business, wallet serial) pair. The serial path auto-creates a customer
// shell on first scan.
type ScanLocator struct {
	CustomerID   *uuid.UUID
	BusinessID   *uuid.UUID
	WalletSerial string
	// CreateRewardType is assigned when the serial path has to enroll a new
	// customer.
	CreateRewardType db_models.RewardType
}

// ScanMutation is what the orchestrator decided should be committed for one scan.
type ScanMutation struct {
	Points             int
	ScanCount          int
	LastVisit          time.Time
	HistoryDescription string
	LogVisit           bool
}

type ScanRepository interface {
	// PerformScan resolves (or enrolls) the customer, invokes decide under a
	// row lock, and commits the point update, visit log, history row and
	// wallet refresh as one transaction. An error from decide rolls back the
	// whole unit.
	PerformScan(ctx context.Context, locate ScanLocator, decide func(c *db_models.Customer) (ScanMutation, error)) (*db_models.Customer, error)
}

type scanRepository struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{
		db: db,
	}
}

func (r *scanRepository) PerformScan(ctx context.Context, locate ScanLocator, decide func(c *db_models.Customer) (ScanMutation, error)) (*db_models.Customer, error) {
	var scanned *db_models.Customer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := r.lockCustomer(tx, locate)
		if err != nil {
			return err
		}

		mutation, err := decide(customer)
		if err != nil {
			return err
		}

		if err := tx.Model(&db_models.Customer{}).
			Where("id = ?", customer.ID).
			Updates(map[string]interface{}{
				"points":     mutation.Points,
				"scan_count": mutation.ScanCount,
				"last_visit": mutation.LastVisit,
			}).Error; err != nil {
			return err
		}

		customer.Points = mutation.Points
		customer.ScanCount = mutation.ScanCount
		lastVisit := mutation.LastVisit
		customer.LastVisit = &lastVisit

		if mutation.LogVisit {
			visit := db_models.Visit{
				CustomerID: customer.ID,
				BusinessID: customer.BusinessID,
				VisitedAt:  mutation.LastVisit,
			}
			if err := tx.Create(&visit).Error; err != nil {
				return err
			}
		}

		// History is written for every scan, reward or not.
		history := db_models.RewardHistoryItem{
			CustomerID:  customer.ID,
			Description: mutation.HistoryDescription,
			Points:      mutation.Points,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if err := r.refreshWallet(tx, customer, mutation); err != nil {
			return err
		}

		scanned = customer
		return nil
	})

	if err != nil {
		return nil, err
	}
	return scanned, nil
}

// lockCustomer fetches the target row under SELECT ... FOR UPDATE so concurrent
// scans of the same customer serialize instead of both reading a stale total.
func (r *scanRepository) lockCustomer(tx *gorm.DB, locate ScanLocator) (*db_models.Customer, error) {
	locked := tx.Clauses(clause.Locking{Strength: "UPDATE"})

	var customer db_models.Customer
	if locate.CustomerID != nil {
		err := locked.First(&customer, "id = ?", *locate.CustomerID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.ErrCustomerNotFound
			}
			return nil, err
		}
		return &customer, nil
	}

	if locate.BusinessID == nil || locate.WalletSerial == "" {
		return nil, utils.ErrValidationFailed
	}

	err := locked.First(&customer, "business_id = ? AND wallet_serial = ?",
		*locate.BusinessID, locate.WalletSerial).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// First scan is enrollment. ON CONFLICT DO NOTHING keeps the transaction
	// alive when a concurrent first scan wins the insert race; we then take
	// the winner's row.
	serial := locate.WalletSerial
	created := db_models.Customer{
		BusinessID:   *locate.BusinessID,
		Name:         "Wallet User",
		WalletSerial: &serial,
		RewardType:   locate.CreateRewardType,
	}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&created)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return &created, nil
	}

	err = locked.First(&customer, "business_id = ? AND wallet_serial = ?",
		*locate.BusinessID, locate.WalletSerial).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// refreshWallet upserts the derived pass projection. Losing this row is
// recoverable, but keeping it in the same transaction means the pass never
// shows a total the customer row does not have.
func (r *scanRepository) refreshWallet(tx *gorm.DB, customer *db_models.Customer, mutation ScanMutation) error {
	lastScanned := mutation.LastVisit
	wallet := db_models.Wallet{
		BusinessID:  customer.BusinessID,
		CustomerID:  customer.ID,
		Points:      mutation.Points,
		LastScanned: &lastScanned,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "business_id"}, {Name: "customer_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":       mutation.Points,
			"last_scanned": mutation.LastVisit,
			"updated_at":   time.Now().Unix(),
		}),
	}).Create(&wallet).Error
}
