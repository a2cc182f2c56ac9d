// Package pricing computes order line and order totals.
//
// Bulgarian VAT is a fixed 20% for every line; a line either carries
// VAT or it does not (include_vat), there is no per-line rate. All
// arithmetic is exact decimal; rounding to two fraction digits happens
// only at the totals boundary.
package pricing

import (
	"avtoservice/internal/core/types"

	"github.com/shopspring/decimal"
)

// VAT rate constants.
var (
	// VATRate is the fixed Bulgarian VAT rate (20%).
	VATRate = decimal.NewFromFloat(0.20)

	// VATMultiplier converts a net price to gross (1.20).
	VATMultiplier = decimal.NewFromFloat(1.20)
)

// Line is the pricing view of an order item.
type Line struct {
	// UnitPrice is the net unit price
	UnitPrice types.Money

	// PriceWithVAT is the explicit gross unit price, when the source
	// document listed one; nil means derive from UnitPrice
	PriceWithVAT *types.Money

	Quantity types.Money

	// IncludeVAT marks the line as VAT-bearing
	IncludeVAT bool

	// IsLabor marks labor lines (counted into LaborTotal)
	IsLabor bool
}

// Totals is the financial summary of an order.
type Totals struct {
	// Subtotal is the net sum of all lines
	Subtotal types.Money `json:"subtotal"`

	// VATAmount is the VAT sum of all VAT-bearing lines
	VATAmount types.Money `json:"vatAmount"`

	// Total is the gross sum
	Total types.Money `json:"total"`

	// LaborTotal is the net sum of labor lines only
	LaborTotal types.Money `json:"laborTotal"`
}

// LineTotal returns the net line amount: unit price × quantity.
func LineTotal(l Line) types.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// LineVAT returns the VAT amount of a line: 20% of the net amount for
// VAT-bearing lines, zero otherwise.
func LineVAT(l Line) types.Money {
	if !l.IncludeVAT {
		return types.Zero()
	}
	return LineTotal(l).Mul(VATRate)
}

// GrossUnitPrice returns the effective unit price with VAT: the
// explicit gross price when the document listed one, otherwise the net
// price times 1.20 for VAT-bearing lines, or the net price as-is.
func GrossUnitPrice(l Line) types.Money {
	if l.PriceWithVAT != nil {
		return *l.PriceWithVAT
	}
	if l.IncludeVAT {
		return l.UnitPrice.Mul(VATMultiplier)
	}
	return l.UnitPrice
}

// LineTotalWithVAT returns the gross line amount.
func LineTotalWithVAT(l Line) types.Money {
	return GrossUnitPrice(l).Mul(l.Quantity)
}

// OrderTotals sums all lines. An order with no lines yields all-zero
// totals. Each component is rounded to two fraction digits half-up at
// this boundary.
func OrderTotals(lines []Line) Totals {
	subtotal := types.Zero()
	vat := types.Zero()
	total := types.Zero()
	labor := types.Zero()

	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l))
		vat = vat.Add(LineVAT(l))
		// The gross total sums the per-line gross amounts. With an
		// explicit gross unit price this can differ from subtotal+VAT;
		// the explicit price wins.
		total = total.Add(LineTotalWithVAT(l))
		if l.IsLabor {
			labor = labor.Add(LineTotal(l))
		}
	}

	return Totals{
		Subtotal:   types.Round2(subtotal),
		VATAmount:  types.Round2(vat),
		Total:      types.Round2(total),
		LaborTotal: types.Round2(labor),
	}
}
