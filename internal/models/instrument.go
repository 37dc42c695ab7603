package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentType represents the category of a tradable instrument.
type InstrumentType string

const (
	InstrumentTypeStock      InstrumentType = "STOCK"
	InstrumentTypeMutualFund InstrumentType = "MF"
	InstrumentTypeGold       InstrumentType = "GOLD"
)

// Instrument represents a tradable asset (stock, mutual fund, or gold).
type Instrument struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Symbol       string          `gorm:"not null;uniqueIndex:uq_instruments_symbol" json:"symbol"`
	Name         string          `gorm:"not null" json:"name"`
	Type         InstrumentType  `gorm:"not null" json:"type"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"current_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
