// Package errors provides custom error types for the Stockfolio API.
// All service-layer errors should use AppError so that handlers can map
// failures to consistent JSON responses and status codes.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Instrument errors.
var (
	ErrInstrumentNotFound  = &AppError{Code: "INSTRUMENT_NOT_FOUND", Message: "Instrument not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSymbol     = &AppError{Code: "DUPLICATE_SYMBOL", Message: "An instrument with this symbol already exists", StatusCode: http.StatusBadRequest}
	ErrInstrumentHasTrades = &AppError{Code: "INSTRUMENT_HAS_TRADES", Message: "Instrument has trade history. Delete its trade log entries first or pass cascade=true", StatusCode: http.StatusBadRequest}
)

// Goal errors.
var (
	ErrGoalNotFound  = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
	ErrGoalHasTrades = &AppError{Code: "GOAL_HAS_TRADES", Message: "Goal is referenced by trade log entries. Delete those entries first", StatusCode: http.StatusBadRequest}
)
