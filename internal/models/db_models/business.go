package db_models

import "github.com/google/uuid"

type Business struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:business"`
	PlanID       *uuid.UUID

	Plan      *Plan      `gorm:"foreignKey:PlanID"`
	Customers []Customer `gorm:"constraint:OnDelete:CASCADE"`
}

// NotificationsAllowed reports whether the business plan permits push
// notifications. A business without an assigned plan gets no side channels.
func (b *Business) NotificationsAllowed() bool {
	return b.Plan != nil && b.Plan.AllowNotifications
}

func (b *Business) MailingSyncAllowed() bool {
	return b.Plan != nil && b.Plan.AllowMailingSync
}

func (b *Business) AdvancedRewardsAllowed() bool {
	return b.Plan != nil && b.Plan.AllowAdvancedRewards
}
