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

// TradeHandler handles trade execution and the trade log.
type TradeHandler struct {
	tradeService services.TradeServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// TradeRequest represents the request payload for a buy or sell.
type TradeRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	GoalID   *uint   `json:"goal_id,omitempty"`
}

// TradeLogResponse is the JSON shape of a trade log entry joined with its
// instrument and goal display fields.
type TradeLogResponse struct {
	ID              uint                  `json:"id"`
	InstrumentID    uint                  `json:"instrument_id"`
	GoalID          *uint                 `json:"goal_id"`
	Symbol          string                `json:"symbol"`
	InstrumentName  string                `json:"instrument_name"`
	InstrumentType  models.InstrumentType `json:"instrument_type"`
	GoalName        *string               `json:"goal_name"`
	TransactionType models.TradeType      `json:"transaction_type"`
	Quantity        float64               `json:"quantity"`
	Price           float64               `json:"price"`
	TotalAmount     float64               `json:"total_amount"`
	CreatedAt       time.Time             `json:"created_at"`
}

func newTradeLogResponse(view *services.TradeLogView) TradeLogResponse {
	return TradeLogResponse{
		ID:              view.ID,
		InstrumentID:    view.InstrumentID,
		GoalID:          view.GoalID,
		Symbol:          view.Symbol,
		InstrumentName:  view.InstrumentName,
		InstrumentType:  view.InstrumentType,
		GoalName:        view.GoalName,
		TransactionType: view.TransactionType,
		Quantity:        view.Quantity.InexactFloat64(),
		Price:           view.Price.InexactFloat64(),
		TotalAmount:     view.TotalAmount.InexactFloat64(),
		CreatedAt:       view.CreatedAt,
	}
}

// ListTradeLog handles listing the full trade log.
// @Summary     List trade log
// @Description Get all trade log entries joined with instrument and goal display fields, newest first
// @Tags        trade-log
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[TradeLogResponse] "Paginated trade log"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trade-log [get]
func (h *TradeHandler) ListTradeLog(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tradeService.ListTradeLog(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]TradeLogResponse, len(result.Data))
	for i := range result.Data {
		responses[i] = newTradeLogResponse(&result.Data[i])
	}

	c.JSON(http.StatusOK, pagination.NewPageResponse(responses, result.Page, result.PageSize, result.TotalItems))
}

// Buy handles buying an instrument.
// @Summary     Buy instrument
// @Description Record a buy of the instrument, appending one trade log entry
// @Tags        trade-log
// @Accept      json
// @Produce     json
// @Param       id      path int          true "Instrument ID"
// @Param       request body TradeRequest true "Trade details"
// @Success     201 {object} map[string]TradeLogResponse "Trade recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments/{id}/buy [post]
func (h *TradeHandler) Buy(c *gin.Context) {
	h.executeTrade(c, models.TradeTypeBuy)
}

// Sell handles selling an instrument. No position is tracked, so a sell is
// accepted regardless of previously bought quantity.
// @Summary     Sell instrument
// @Description Record a sell of the instrument, appending one trade log entry
// @Tags        trade-log
// @Accept      json
// @Produce     json
// @Param       id      path int          true "Instrument ID"
// @Param       request body TradeRequest true "Trade details"
// @Success     201 {object} map[string]TradeLogResponse "Trade recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments/{id}/sell [post]
func (h *TradeHandler) Sell(c *gin.Context) {
	h.executeTrade(c, models.TradeTypeSell)
}

func (h *TradeHandler) executeTrade(c *gin.Context, kind models.TradeType) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view, err := h.tradeService.ExecuteTrade(
		id, kind, decimal.NewFromFloat(req.Quantity), decimal.NewFromFloat(req.Price), req.GoalID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trade": newTradeLogResponse(view)})
}
