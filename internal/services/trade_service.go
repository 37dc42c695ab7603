package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// tradeService handles the trade log and trade execution.
type tradeService struct {
	db *gorm.DB
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB) TradeServicer {
	return &tradeService{db: db}
}

// newTradeLogView projects a trade log entry with its loaded relations into
// the denormalized read shape.
func newTradeLogView(entry *models.TradeLog) TradeLogView {
	view := TradeLogView{
		ID:              entry.ID,
		InstrumentID:    entry.InstrumentID,
		GoalID:          entry.GoalID,
		Symbol:          entry.Instrument.Symbol,
		InstrumentName:  entry.Instrument.Name,
		InstrumentType:  entry.Instrument.Type,
		TransactionType: entry.TransactionType,
		Quantity:        entry.Quantity,
		Price:           entry.Price,
		TotalAmount:     entry.TotalAmount,
		CreatedAt:       entry.CreatedAt,
	}
	if entry.Goal != nil {
		view.GoalName = &entry.Goal.Name
	}
	return view
}

// ListTradeLog returns every trade log entry joined with its instrument's
// display fields and its goal's name, newest first.
func (s *tradeService) ListTradeLog(page pagination.PageRequest) (*pagination.PageResponse[TradeLogView], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.TradeLog{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.TradeLog
	if err := s.db.Preload("Instrument").Preload("Goal").
		Order("created_at DESC").Scopes(pagination.Paginate(page)).
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]TradeLogView, len(entries))
	for i := range entries {
		views[i] = newTradeLogView(&entries[i])
	}

	result := pagination.NewPageResponse(views, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ExecuteTrade validates the request, resolves its references, and appends
// one trade log entry with total_amount = quantity * price. The insert and
// the re-read returned to the caller happen in one transaction. Buy and sell
// are the same operation parameterized by kind: no position is tracked, so a
// sell is never rejected for exceeding a held quantity.
func (s *tradeService) ExecuteTrade(instrumentID uint, kind models.TradeType, quantity, price decimal.Decimal, goalID *uint) (*TradeLogView, error) {
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be positive")
	}
	if !price.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be positive")
	}

	var instrument models.Instrument
	if err := s.db.First(&instrument, instrumentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstrumentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// A dangling goal reference comes from the request body, so it surfaces
	// as a validation failure rather than a not-found.
	if goalID != nil {
		var goal models.Goal
		if err := s.db.First(&goal, *goalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Goal not found")
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	entry := models.TradeLog{
		InstrumentID:    instrumentID,
		GoalID:          goalID,
		TransactionType: kind,
		Quantity:        quantity,
		Price:           price,
		TotalAmount:     quantity.Mul(price),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(&entry).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Preload("Instrument").Preload("Goal").First(&entry, entry.ID).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := newTradeLogView(&entry)
	return &view, nil
}
