package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents the request payload for creating or updating a goal.
type GoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=200"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
}

// GoalResponse is the JSON shape of a goal.
type GoalResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	TargetAmount float64   `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

func newGoalResponse(goal *models.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount.InexactFloat64(),
		CreatedAt:    goal.CreatedAt,
	}
}

// CreateGoal handles creating a new savings goal.
// @Summary     Create goal
// @Description Create a new savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body GoalRequest true "Goal details"
// @Success     201 {object} map[string]GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.Name, decimal.NewFromFloat(req.TargetAmount))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": newGoalResponse(goal)})
}

// ListGoals handles listing all goals.
// @Summary     List goals
// @Description Get goals ordered by creation time, newest first
// @Tags        goals
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[GoalResponse] "Paginated goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.goalService.ListGoals(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]GoalResponse, len(result.Data))
	for i := range result.Data {
		responses[i] = newGoalResponse(&result.Data[i])
	}

	c.JSON(http.StatusOK, pagination.NewPageResponse(responses, result.Page, result.PageSize, result.TotalItems))
}

// GetGoal handles retrieving a specific goal.
// @Summary     Get goal by ID
// @Description Get a specific goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} map[string]GoalResponse "Goal details"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": newGoalResponse(goal)})
}

// UpdateGoal handles updating a goal in place.
// @Summary     Update goal
// @Description Replace a goal's name and target amount
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path int         true "Goal ID"
// @Param       request body GoalRequest true "Goal details"
// @Success     200 {object} map[string]GoalResponse "Goal updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(id, req.Name, decimal.NewFromFloat(req.TargetAmount))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": newGoalResponse(goal)})
}

// DeleteGoal handles deleting a goal. Deletion is always blocked while trade
// log entries reference the goal.
// @Summary     Delete goal
// @Description Delete a goal. Blocked while trade log entries reference it; there is no cascade option
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} map[string]string "Goal deleted"
// @Failure     400 {object} ErrorResponse "Goal has trade log references"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
