package dto

import (
	"avtoservice/internal/core/types"
)

// ConvertCurrencyRequest converts an amount between BGN and EUR.
// Amount is a decimal string; query binding cannot populate decimal
// types directly.
type ConvertCurrencyRequest struct {
	Amount string `form:"amount" binding:"required"`
	// From is "BGN" (default) or "EUR"
	From string `form:"from"`
}

// ConvertCurrencyResponse carries both sides of a conversion.
type ConvertCurrencyResponse struct {
	BGN       types.Money `json:"bgn"`
	EUR       types.Money `json:"eur"`
	Rate      types.Money `json:"rate"`
	Formatted string      `json:"formatted"`
}
