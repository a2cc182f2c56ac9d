package currency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/types"
	"avtoservice/internal/infrastructure/cache"
)

func m(s string) types.Money {
	return types.MustMoney(s)
}

func newTestConverter() *Converter {
	return NewConverter(cache.NewMemory(), nil)
}

func TestConverter_FallbackRate(t *testing.T) {
	c := newTestConverter()
	rate := c.Rate(context.Background())
	assert.True(t, rate.Equal(m("1.95583")))
}

func TestConverter_CachesRate(t *testing.T) {
	mem := cache.NewMemory()
	c := NewConverter(mem, nil)

	_ = c.Rate(context.Background())
	cached, ok := mem.Get(RateCacheKey)
	require.True(t, ok, "rate stored under the cache key")
	assert.True(t, cached.Equal(FallbackRate))
}

type fixedSource struct {
	rate decimal.Decimal
	err  error
}

func (f fixedSource) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	return f.rate, f.err
}

func TestConverter_PrefersLiveSource(t *testing.T) {
	c := NewConverter(cache.NewMemory(), fixedSource{rate: m("1.95000")})
	assert.True(t, c.Rate(context.Background()).Equal(m("1.95000")))
}

func TestConverter_SourceErrorFallsBack(t *testing.T) {
	c := NewConverter(cache.NewMemory(), fixedSource{err: errors.New("timeout")})
	assert.True(t, c.Rate(context.Background()).Equal(FallbackRate))
}

func TestConverter_BGNToEUR(t *testing.T) {
	c := newTestConverter()
	ctx := context.Background()

	// 100 лв / 1.95583 = 51.129... → 51.13 €
	assert.True(t, c.BGNToEUR(ctx, m("100.00")).Equal(m("51.13")))
	assert.True(t, c.BGNToEUR(ctx, m("0")).IsZero())
}

func TestConverter_EURToBGN(t *testing.T) {
	c := newTestConverter()
	ctx := context.Background()

	// 51.13 € × 1.95583 = 100.00... → 100.00 лв
	assert.True(t, c.EURToBGN(ctx, m("51.13")).Equal(m("100.00")))
	assert.True(t, c.EURToBGN(ctx, m("0")).IsZero())
}

func TestConverter_RoundTrip(t *testing.T) {
	c := newTestConverter()
	ctx := context.Background()

	amounts := []string{"1.00", "19.99", "100.00", "1234.56", "0.01"}
	for _, s := range amounts {
		bgn := m(s)
		back := c.EURToBGN(ctx, c.BGNToEUR(ctx, bgn))
		diff := back.Sub(bgn).Abs()
		assert.True(t, diff.LessThanOrEqual(m("0.01")),
			"%s лв round-trips to %s (diff %s)", s, back, diff)
	}
}

func TestConverter_FormatDual(t *testing.T) {
	c := newTestConverter()
	ctx := context.Background()

	assert.Equal(t, "100.00 лв. (51.13 €)", c.FormatDual(ctx, m("100.00")))
	assert.Equal(t, "0.00 лв.", c.FormatDual(ctx, m("0")))
}

func TestConverter_FormatPair(t *testing.T) {
	c := newTestConverter()
	ctx := context.Background()

	bgn, eur := c.FormatPair(ctx, m("100.00"))
	assert.Equal(t, "100.00 лв.", bgn)
	assert.Equal(t, "51.13 €", eur)

	bgn, eur = c.FormatPair(ctx, m("0"))
	assert.Equal(t, "0.00 лв.", bgn)
	assert.Equal(t, "0.00 €", eur)
}

func TestConverter_CacheTTL(t *testing.T) {
	// Set directly with a tiny TTL and verify expiry forces a refresh.
	mem := cache.NewMemory()
	mem.Set(RateCacheKey, m("9.99999"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	c := NewConverter(mem, nil)
	assert.True(t, c.Rate(context.Background()).Equal(FallbackRate),
		"expired cache entry must not be served")
}
