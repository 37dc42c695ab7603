package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// instrumentService handles instrument-related business logic.
type instrumentService struct {
	db *gorm.DB
}

// NewInstrumentService creates a new InstrumentServicer.
func NewInstrumentService(db *gorm.DB) InstrumentServicer {
	return &instrumentService{db: db}
}

// validateInstrumentInput checks the field-level invariants shared by create
// and update.
func validateInstrumentInput(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) error {
	if strings.TrimSpace(symbol) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	switch instrumentType {
	case models.InstrumentTypeStock, models.InstrumentTypeMutualFund, models.InstrumentTypeGold:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Type must be one of STOCK, MF, GOLD")
	}
	if !price.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be positive")
	}
	return nil
}

// CreateInstrument creates a new instrument record.
func (s *instrumentService) CreateInstrument(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
	if err := validateInstrumentInput(symbol, name, instrumentType, price); err != nil {
		return nil, err
	}

	instrument := &models.Instrument{
		Symbol:       strings.TrimSpace(symbol),
		Name:         strings.TrimSpace(name),
		Type:         instrumentType,
		CurrentPrice: price,
	}

	if err := s.db.Create(instrument).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateSymbol
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return instrument, nil
}

// ListInstruments returns a paginated list of instruments, newest first.
func (s *instrumentService) ListInstruments(page pagination.PageRequest) (*pagination.PageResponse[models.Instrument], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Instrument{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var instruments []models.Instrument
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&instruments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(instruments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInstrumentByID returns an instrument by its ID.
func (s *instrumentService) GetInstrumentByID(id uint) (*models.Instrument, error) {
	var instrument models.Instrument
	if err := s.db.First(&instrument, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstrumentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &instrument, nil
}

// UpdateInstrument replaces the mutable fields of an instrument.
func (s *instrumentService) UpdateInstrument(id uint, symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
	if err := validateInstrumentInput(symbol, name, instrumentType, price); err != nil {
		return nil, err
	}

	instrument, err := s.GetInstrumentByID(id)
	if err != nil {
		return nil, err
	}

	instrument.Symbol = strings.TrimSpace(symbol)
	instrument.Name = strings.TrimSpace(name)
	instrument.Type = instrumentType
	instrument.CurrentPrice = price

	if err := s.db.Save(instrument).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateSymbol
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return instrument, nil
}

// DeleteInstrument deletes an instrument. When the instrument has trade log
// entries the deletion is blocked unless cascade is set, in which case the
// entries and the instrument are removed in one transaction so a failure
// partway leaves both intact.
func (s *instrumentService) DeleteInstrument(id uint, cascade bool) error {
	if _, err := s.GetInstrumentByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var tradeCount int64
		if err := tx.Model(&models.TradeLog{}).Where("instrument_id = ?", id).Count(&tradeCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if tradeCount > 0 {
			if !cascade {
				return apperrors.ErrInstrumentHasTrades
			}
			if err := tx.Where("instrument_id = ?", id).Delete(&models.TradeLog{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Delete(&models.Instrument{}, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
