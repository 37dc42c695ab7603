package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// InstrumentHandler handles instrument-related requests.
type InstrumentHandler struct {
	instrumentService services.InstrumentServicer
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(instrumentService services.InstrumentServicer) *InstrumentHandler {
	return &InstrumentHandler{instrumentService: instrumentService}
}

// InstrumentRequest represents the request payload for creating or updating
// an instrument. Updates are full replacements, so the same payload serves
// both.
type InstrumentRequest struct {
	Symbol       string                `json:"symbol" binding:"required,min=1,max=20"`
	Name         string                `json:"name" binding:"required,min=1,max=200"`
	Type         models.InstrumentType `json:"type" binding:"required,instrument_type"`
	CurrentPrice float64               `json:"current_price" binding:"required,gt=0"`
}

// InstrumentResponse is the JSON shape of an instrument. Monetary fields go
// out as plain numbers; the exact decimal representation stays internal.
type InstrumentResponse struct {
	ID           uint                  `json:"id"`
	Symbol       string                `json:"symbol"`
	Name         string                `json:"name"`
	Type         models.InstrumentType `json:"type"`
	CurrentPrice float64               `json:"current_price"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func newInstrumentResponse(instrument *models.Instrument) InstrumentResponse {
	return InstrumentResponse{
		ID:           instrument.ID,
		Symbol:       instrument.Symbol,
		Name:         instrument.Name,
		Type:         instrument.Type,
		CurrentPrice: instrument.CurrentPrice.InexactFloat64(),
		CreatedAt:    instrument.CreatedAt,
		UpdatedAt:    instrument.UpdatedAt,
	}
}

// CreateInstrument handles creating a new instrument.
// @Summary     Create instrument
// @Description Create a new tradable instrument
// @Tags        instruments
// @Accept      json
// @Produce     json
// @Param       request body InstrumentRequest true "Instrument details"
// @Success     201 {object} map[string]InstrumentResponse "Instrument created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments [post]
func (h *InstrumentHandler) CreateInstrument(c *gin.Context) {
	var req InstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	instrument, err := h.instrumentService.CreateInstrument(
		req.Symbol, req.Name, req.Type, decimal.NewFromFloat(req.CurrentPrice),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"instrument": newInstrumentResponse(instrument)})
}

// ListInstruments handles listing all instruments.
// @Summary     List instruments
// @Description Get instruments ordered by creation time, newest first
// @Tags        instruments
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[InstrumentResponse] "Paginated instruments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments [get]
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.instrumentService.ListInstruments(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]InstrumentResponse, len(result.Data))
	for i := range result.Data {
		responses[i] = newInstrumentResponse(&result.Data[i])
	}

	c.JSON(http.StatusOK, pagination.NewPageResponse(responses, result.Page, result.PageSize, result.TotalItems))
}

// GetInstrument handles retrieving a specific instrument.
// @Summary     Get instrument by ID
// @Description Get a specific instrument by ID
// @Tags        instruments
// @Produce     json
// @Param       id path int true "Instrument ID"
// @Success     200 {object} map[string]InstrumentResponse "Instrument details"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments/{id} [get]
func (h *InstrumentHandler) GetInstrument(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	instrument, err := h.instrumentService.GetInstrumentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"instrument": newInstrumentResponse(instrument)})
}

// UpdateInstrument handles updating an instrument in place.
// @Summary     Update instrument
// @Description Replace an instrument's symbol, name, type, and price
// @Tags        instruments
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Instrument ID"
// @Param       request body InstrumentRequest true "Instrument details"
// @Success     200 {object} map[string]InstrumentResponse "Instrument updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments/{id} [put]
func (h *InstrumentHandler) UpdateInstrument(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	instrument, err := h.instrumentService.UpdateInstrument(
		id, req.Symbol, req.Name, req.Type, decimal.NewFromFloat(req.CurrentPrice),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"instrument": newInstrumentResponse(instrument)})
}

// DeleteInstrument handles deleting an instrument, optionally cascading to
// its trade log entries.
// @Summary     Delete instrument
// @Description Delete an instrument. Blocked while trade log entries reference it unless cascade=true, which removes the entries and the instrument atomically
// @Tags        instruments
// @Produce     json
// @Param       id      path  int     true  "Instrument ID"
// @Param       cascade query boolean false "Delete referencing trade log entries too"
// @Success     200 {object} map[string]string "Instrument deleted"
// @Failure     400 {object} ErrorResponse "Instrument has trade history"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /instruments/{id} [delete]
func (h *InstrumentHandler) DeleteInstrument(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	cascade := false
	if raw := c.Query("cascade"); raw != "" {
		cascade, err = strconv.ParseBool(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid cascade flag"))
			return
		}
	}

	if err := h.instrumentService.DeleteInstrument(id, cascade); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Instrument deleted"})
}
