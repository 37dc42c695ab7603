package services

import (
	"time"

	"github.com/shopspring/decimal"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// InstrumentServicer defines the contract for instrument-related business logic.
type InstrumentServicer interface {
	CreateInstrument(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error)
	ListInstruments(page pagination.PageRequest) (*pagination.PageResponse[models.Instrument], error)
	GetInstrumentByID(id uint) (*models.Instrument, error)
	UpdateInstrument(id uint, symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error)
	DeleteInstrument(id uint, cascade bool) error
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(name string, targetAmount decimal.Decimal) (*models.Goal, error)
	ListGoals(page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(id uint) (*models.Goal, error)
	UpdateGoal(id uint, name string, targetAmount decimal.Decimal) (*models.Goal, error)
	DeleteGoal(id uint) error
}

// TradeLogView is the read-side projection of a trade log entry joined with
// its instrument's display fields and, when tagged, its goal's name. It is
// computed per query and never stored.
type TradeLogView struct {
	ID              uint
	InstrumentID    uint
	GoalID          *uint
	Symbol          string
	InstrumentName  string
	InstrumentType  models.InstrumentType
	GoalName        *string
	TransactionType models.TradeType
	Quantity        decimal.Decimal
	Price           decimal.Decimal
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
}

// TradeServicer defines the contract for the trade log and trade execution.
type TradeServicer interface {
	ListTradeLog(page pagination.PageRequest) (*pagination.PageResponse[TradeLogView], error)
	ExecuteTrade(instrumentID uint, kind models.TradeType, quantity, price decimal.Decimal, goalID *uint) (*TradeLogView, error)
}
