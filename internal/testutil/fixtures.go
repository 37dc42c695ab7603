package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockfolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestInstrument creates a stock instrument with a unique symbol and a
// price of 100.
func CreateTestInstrument(t *testing.T, db *gorm.DB) *models.Instrument {
	t.Helper()
	return CreateTestInstrumentWithSymbol(t, db, fmt.Sprintf("TST%d", nextID()))
}

// CreateTestInstrumentWithSymbol creates a stock instrument with the given symbol.
func CreateTestInstrumentWithSymbol(t *testing.T, db *gorm.DB, symbol string) *models.Instrument {
	t.Helper()

	instrument := &models.Instrument{
		Symbol:       symbol,
		Name:         symbol + " Corp",
		Type:         models.InstrumentTypeStock,
		CurrentPrice: decimal.NewFromInt(100),
	}
	if err := db.Create(instrument).Error; err != nil {
		t.Fatalf("failed to create test instrument: %v", err)
	}
	return instrument
}

// CreateTestGoal creates a goal with a unique name and a target of 10000.
func CreateTestGoal(t *testing.T, db *gorm.DB) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: decimal.NewFromInt(10000),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestTrade creates a BUY trade log entry of 10 units at 100 for the
// given instrument, optionally tagged with a goal.
func CreateTestTrade(t *testing.T, db *gorm.DB, instrumentID uint, goalID *uint) *models.TradeLog {
	t.Helper()

	quantity := decimal.NewFromInt(10)
	price := decimal.NewFromInt(100)
	entry := &models.TradeLog{
		InstrumentID:    instrumentID,
		GoalID:          goalID,
		TransactionType: models.TradeTypeBuy,
		Quantity:        quantity,
		Price:           price,
		TotalAmount:     quantity.Mul(price),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return entry
}
