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

// goalService handles goal-related business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

func validateGoalInput(name string, targetAmount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if !targetAmount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Target amount must be positive")
	}
	return nil
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(name string, targetAmount decimal.Decimal) (*models.Goal, error) {
	if err := validateGoalInput(name, targetAmount); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		Name:         strings.TrimSpace(name),
		TargetAmount: targetAmount,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// ListGoals returns a paginated list of goals, newest first.
func (s *goalService) ListGoals(page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Goal{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by its ID.
func (s *goalService) GetGoalByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal replaces the mutable fields of a goal.
func (s *goalService) UpdateGoal(id uint, name string, targetAmount decimal.Decimal) (*models.Goal, error) {
	if err := validateGoalInput(name, targetAmount); err != nil {
		return nil, err
	}

	goal, err := s.GetGoalByID(id)
	if err != nil {
		return nil, err
	}

	goal.Name = strings.TrimSpace(name)
	goal.TargetAmount = targetAmount

	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// DeleteGoal deletes a goal. Deletion is always blocked while trade log
// entries reference the goal; there is no cascade override.
func (s *goalService) DeleteGoal(id uint) error {
	if _, err := s.GetGoalByID(id); err != nil {
		return err
	}

	var tradeCount int64
	if err := s.db.Model(&models.TradeLog{}).Where("goal_id = ?", id).Count(&tradeCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if tradeCount > 0 {
		return apperrors.ErrGoalHasTrades
	}

	if err := s.db.Delete(&models.Goal{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
