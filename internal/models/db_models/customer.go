package db_models

import (
	"time"

	"github.com/google/uuid"
)

type RewardType string

const (
	RewardStamps  RewardType = "stamps"
	RewardPayback RewardType = "payback"
	RewardOnetime RewardType = "onetime"
	RewardNone    RewardType = "" // first-touch join state, no accrual policy yet
)

func (r RewardType) Valid() bool {
	switch r {
	case RewardStamps, RewardPayback, RewardOnetime, RewardNone:
		return true
	}
	return false
}

type Customer struct {
	BaseModel
	BusinessID uuid.UUID `gorm:"index;uniqueIndex:idx_business_email;uniqueIndex:idx_business_serial"`
	Name       string
	Email      *string `gorm:"uniqueIndex:idx_business_email"`
	Phone      *string
	RewardType RewardType `gorm:"size:16"`
	Points     int        `gorm:"not null;default:0"`
	ScanCount  int        `gorm:"not null;default:0"`
	LastVisit  *time.Time

	// Push token registered by the customer's device, absent until opt-in.
	FCMToken *string

	// Stable identifier embedded in the Apple/Google pass. Unique per business so
	// concurrent first scans of the same pass collapse onto one row.
	WalletSerial *string `gorm:"uniqueIndex:idx_business_serial"`

	Business      Business            `gorm:"foreignKey:BusinessID"`
	Visits        []Visit             `gorm:"constraint:OnDelete:CASCADE"`
	RewardHistory []RewardHistoryItem `gorm:"constraint:OnDelete:CASCADE"`
}
