package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeType represents the kind of a trade log entry.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

// TradeLog is an immutable record of one buy or sell. Rows are only ever
// inserted (by trade execution) or deleted (by cascade deletion of an
// instrument); they are never updated.
type TradeLog struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	InstrumentID    uint            `gorm:"not null;index" json:"instrument_id"`
	GoalID          *uint           `gorm:"index" json:"goal_id"`
	TransactionType TradeType       `gorm:"not null" json:"transaction_type"`
	Quantity        decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"price"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relationships
	Instrument Instrument `gorm:"foreignKey:InstrumentID" json:"instrument"`
	Goal       *Goal      `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
}
