// Package currency converts between BGN and EUR and renders the dual
// "лв. (€)" display used everywhere in the UI and on invoices.
package currency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"avtoservice/internal/core/types"
	"avtoservice/pkg/logger"
)

// FallbackRate is the pegged BGN per EUR rate used when no live
// source is available. The lev has been pegged since 1997, so the
// fallback is effectively exact.
var FallbackRate = decimal.RequireFromString("1.95583")

const (
	// RateCacheKey is the cache key for the current rate.
	RateCacheKey = "eur_bgn_rate"

	// RateTTL is how long a fetched rate stays cached.
	RateTTL = 3600 * time.Second
)

// ErrRateSourceUnavailable is returned by rate sources that have no
// live feed configured.
var ErrRateSourceUnavailable = errors.New("currency: rate source unavailable")

// RateCache stores the exchange rate with expiry.
type RateCache interface {
	Get(key string) (decimal.Decimal, bool)
	Set(key string, value decimal.Decimal, ttl time.Duration)
}

// RateSource fetches the live BGN per EUR rate (e.g. the BNB feed).
type RateSource interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}

// StaticSource is a RateSource without a live feed; the converter
// falls back to the pegged rate.
type StaticSource struct{}

// FetchRate always reports the source as unavailable.
func (StaticSource) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, ErrRateSourceUnavailable
}

// Converter converts amounts and formats dual-currency text.
// Both collaborators are injected; there is no package-level state.
type Converter struct {
	cache  RateCache
	source RateSource
}

// NewConverter creates a converter.
func NewConverter(cache RateCache, source RateSource) *Converter {
	if source == nil {
		source = StaticSource{}
	}
	return &Converter{cache: cache, source: source}
}

// Rate returns the current BGN per EUR rate: cached value if fresh,
// else the live source, else the pegged fallback. Whatever it returns
// is written back to the cache.
func (c *Converter) Rate(ctx context.Context) types.Money {
	if rate, ok := c.cache.Get(RateCacheKey); ok {
		return rate
	}

	rate, err := c.source.FetchRate(ctx)
	if err != nil {
		if !errors.Is(err, ErrRateSourceUnavailable) {
			logger.Warn(ctx, "rate source failed, using fallback", "error", err)
		}
		rate = FallbackRate
	}

	c.cache.Set(RateCacheKey, rate, RateTTL)
	return rate
}

// BGNToEUR converts a BGN amount to EUR, rounded to stotinki/cents.
func (c *Converter) BGNToEUR(ctx context.Context, bgn types.Money) types.Money {
	if bgn.IsZero() {
		return types.Zero()
	}
	return types.Round2(bgn.Div(c.Rate(ctx)))
}

// EURToBGN converts a EUR amount to BGN, rounded.
func (c *Converter) EURToBGN(ctx context.Context, eur types.Money) types.Money {
	if eur.IsZero() {
		return types.Zero()
	}
	return types.Round2(eur.Mul(c.Rate(ctx)))
}

// FormatDual renders "100.00 лв. (51.13 €)". Zero renders as
// "0.00 лв." without the EUR part.
func (c *Converter) FormatDual(ctx context.Context, bgn types.Money) string {
	if bgn.IsZero() {
		return "0.00 лв."
	}
	eur := c.BGNToEUR(ctx, bgn)
	return fmt.Sprintf("%s лв. (%s €)", bgn.StringFixed(2), eur.StringFixed(2))
}

// FormatPair renders the two columns separately for table display.
func (c *Converter) FormatPair(ctx context.Context, bgn types.Money) (string, string) {
	if bgn.IsZero() {
		return "0.00 лв.", "0.00 €"
	}
	eur := c.BGNToEUR(ctx, bgn)
	return fmt.Sprintf("%s лв.", bgn.StringFixed(2)), fmt.Sprintf("%s €", eur.StringFixed(2))
}

// Info describes the current rate for the info endpoint.
type Info struct {
	Rate        types.Money `json:"rate"`
	RateText    string      `json:"rateText"`
	LastUpdated string      `json:"lastUpdated"`
}

// CurrentInfo returns the rate with display text.
func (c *Converter) CurrentInfo(ctx context.Context) Info {
	rate := c.Rate(ctx)
	return Info{
		Rate:        rate,
		RateText:    fmt.Sprintf("1 EUR = %s BGN", rate.StringFixed(5)),
		LastUpdated: time.Now().Format("02.01.2006 15:04"),
	}
}
