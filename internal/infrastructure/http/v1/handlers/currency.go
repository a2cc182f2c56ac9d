package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/currency"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// CurrencyHandler exposes the EUR/BGN rate and amount conversion.
type CurrencyHandler struct {
	*BaseHandler
	converter *currency.Converter
}

// NewCurrencyHandler creates a new currency handler.
func NewCurrencyHandler(base *BaseHandler, converter *currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{
		BaseHandler: base,
		converter:   converter,
	}
}

// Rate handles GET /currency/rate
func (h *CurrencyHandler) Rate(c *gin.Context) {
	h.OK(c, h.converter.CurrentInfo(c.Request.Context()))
}

// Convert handles GET /currency/convert?amount=100.00&from=BGN
func (h *CurrencyHandler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ConvertCurrencyRequest
	if !h.BindQuery(c, &req) {
		return
	}

	amount, err := types.NewMoneyFromString(req.Amount)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid amount").WithDetail("amount", req.Amount))
		return
	}

	resp := dto.ConvertCurrencyResponse{
		Rate: h.converter.Rate(ctx),
	}

	if strings.EqualFold(req.From, "EUR") {
		resp.EUR = amount
		resp.BGN = h.converter.EURToBGN(ctx, amount)
	} else {
		resp.BGN = amount
		resp.EUR = h.converter.BGNToEUR(ctx, amount)
	}
	resp.Formatted = h.converter.FormatDual(ctx, resp.BGN)

	h.OK(c, resp)
}
