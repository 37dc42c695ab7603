package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a named savings target that trades can be tagged against.
type Goal struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"target_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}
