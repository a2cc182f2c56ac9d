package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avtoservice/internal/core/types"
)

func m(s string) types.Money {
	return types.MustMoney(s)
}

func TestLineTotals_WithVAT(t *testing.T) {
	// Part at 10.00 лв net, quantity 3, VAT-bearing:
	// net 30.00, VAT 6.00, gross 36.00.
	l := Line{
		UnitPrice:  m("10.00"),
		Quantity:   m("3"),
		IncludeVAT: true,
	}

	assert.True(t, LineTotal(l).Equal(m("30.00")))
	assert.True(t, LineVAT(l).Equal(m("6.00")))
	assert.True(t, LineTotalWithVAT(l).Equal(m("36.00")))
	assert.True(t, GrossUnitPrice(l).Equal(m("12.00")))
}

func TestLineTotals_WithoutVAT(t *testing.T) {
	l := Line{
		UnitPrice: m("10.00"),
		Quantity:  m("3"),
	}

	assert.True(t, LineTotal(l).Equal(m("30.00")))
	assert.True(t, LineVAT(l).IsZero())
	assert.True(t, LineTotalWithVAT(l).Equal(m("30.00")))
}

func TestGrossUnitPrice_ExplicitOverride(t *testing.T) {
	// Supplier invoices sometimes list the gross price directly; the
	// explicit value wins over the derived one.
	gross := m("11.80")
	l := Line{
		UnitPrice:    m("10.00"),
		PriceWithVAT: &gross,
		Quantity:     m("1"),
		IncludeVAT:   true,
	}

	assert.True(t, GrossUnitPrice(l).Equal(m("11.80")))
	assert.True(t, LineTotalWithVAT(l).Equal(m("11.80")))
	// Net amount and VAT still come from the net price.
	assert.True(t, LineVAT(l).Equal(m("2.00")))
}

func TestOrderTotals(t *testing.T) {
	lines := []Line{
		{UnitPrice: m("10.00"), Quantity: m("3"), IncludeVAT: true},
		{UnitPrice: m("45.50"), Quantity: m("1"), IncludeVAT: true, IsLabor: true},
		{UnitPrice: m("5.25"), Quantity: m("2")},
	}

	totals := OrderTotals(lines)

	assert.True(t, totals.Subtotal.Equal(m("86.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.VATAmount.Equal(m("15.10")), "vat = %s", totals.VATAmount)
	assert.True(t, totals.Total.Equal(m("101.10")), "total = %s", totals.Total)
	assert.True(t, totals.LaborTotal.Equal(m("45.50")), "labor = %s", totals.LaborTotal)
}

func TestOrderTotals_ExplicitGrossWins(t *testing.T) {
	// A line with an explicit gross of 11.80 (not net × 1.20): the
	// order total follows the per-line gross amounts, not subtotal+VAT.
	gross := m("11.80")
	lines := []Line{
		{UnitPrice: m("10.00"), PriceWithVAT: &gross, Quantity: m("1"), IncludeVAT: true},
	}

	totals := OrderTotals(lines)

	assert.True(t, totals.Subtotal.Equal(m("10.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.VATAmount.Equal(m("2.00")), "vat = %s", totals.VATAmount)
	assert.True(t, totals.Total.Equal(m("11.80")), "total = %s", totals.Total)
}

func TestOrderTotals_EmptyOrder(t *testing.T) {
	totals := OrderTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.VATAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.LaborTotal.IsZero())
}

func TestOrderTotals_Consistency(t *testing.T) {
	// total == subtotal + vat within a stotinka, including lines with
	// fractional quantities that force rounding.
	lines := []Line{
		{UnitPrice: m("18.437"), Quantity: m("2.5"), IncludeVAT: true},
		{UnitPrice: m("7.99"), Quantity: m("3"), IncludeVAT: true},
		{UnitPrice: m("0.335"), Quantity: m("7")},
	}

	totals := OrderTotals(lines)
	diff := totals.Total.Sub(totals.Subtotal.Add(totals.VATAmount)).Abs()
	assert.True(t, diff.LessThanOrEqual(m("0.01")), "diff = %s", diff)
}
