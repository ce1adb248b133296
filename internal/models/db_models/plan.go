package db_models

import (
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g., "free", "starter", "pro"
	Name        string
	Description *string

	AllowNotifications   bool `gorm:"default:false"`
	AllowAdvancedRewards bool `gorm:"default:false"`
	AllowMailingSync     bool `gorm:"default:false"`

	// Optional: per-plan quotas (max customers, monthly pushes, etc.)
	Limits datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
