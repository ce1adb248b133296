package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Visit is an append-only log row. Rows are never updated or deleted while the
// customer exists.
type Visit struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"index"`
	BusinessID uuid.UUID `gorm:"index"`
	VisitedAt  time.Time

	Customer Customer `gorm:"foreignKey:CustomerID"`
	Business Business `gorm:"foreignKey:BusinessID"`
}
