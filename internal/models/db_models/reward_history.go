package db_models

import (
	"github.com/google/uuid"
)

// NoRewardDescription marks history rows for scans that crossed no threshold.
const NoRewardDescription = "Scanned - no reward"

// RewardHistoryItem is written exactly once per scan, reward or not. Append-only,
// used for audit and analytics.
type RewardHistoryItem struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"index"`
	Description string
	Points      int // point total after the scan

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
