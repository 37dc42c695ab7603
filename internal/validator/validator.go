// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("instrument_type", validateInstrumentType)
		_ = v.RegisterValidation("trade_type", validateTradeType)
	}
}

func validateInstrumentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "STOCK", "MF", "GOLD":
		return true
	}
	return false
}

func validateTradeType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "BUY", "SELL":
		return true
	}
	return false
}
