package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Wallet is the per (business, customer) projection backing Apple/Google passes.
// Created lazily on first registration, refreshed on every scan. It is derived
// state: safe to rebuild from Customer.Points if lost.
type Wallet struct {
	BaseModel
	BusinessID  uuid.UUID `gorm:"index;uniqueIndex:idx_wallet_owner"`
	CustomerID  uuid.UUID `gorm:"uniqueIndex:idx_wallet_owner"`
	Points      int       `gorm:"not null;default:0"`
	LastScanned *time.Time

	// Rendered pass fields cached for the issuers (barcode text, tier labels).
	PassData datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Business Business `gorm:"foreignKey:BusinessID"`
	Customer Customer `gorm:"foreignKey:CustomerID"`
}
