package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/id"
	"avtoservice/internal/core/types"
)

func m(s string) types.Money {
	return types.MustMoney(s)
}

func TestOrder_Validate_ClientIdentification(t *testing.T) {
	// Neither reference nor client name: invalid.
	o := New()
	require.Error(t, o.Validate(context.Background()))

	// Standalone client name is the accepted minimum.
	o = New()
	o.ClientName = "Георги Димитров"
	o.CarInfo = "Opel Astra СВ1234АХ"
	require.NoError(t, o.Validate(context.Background()))

	// Customer reference alone works too.
	o = New()
	custID := id.New()
	o.CustomerID = &custID
	require.NoError(t, o.Validate(context.Background()))

	// Car reference without customer reference is rejected.
	o = New()
	o.ClientName = "Георги Димитров"
	carID := id.New()
	o.CarID = &carID
	require.Error(t, o.Validate(context.Background()))
}

func TestOrder_Validate_Items(t *testing.T) {
	o := New()
	o.ClientName = "Георги Димитров"
	o.AddItem(Item{Name: "Маслен филтър", Quantity: m("1"), PurchasePrice: m("12.50")})
	require.NoError(t, o.Validate(context.Background()))

	o.AddItem(Item{Quantity: m("1"), PurchasePrice: m("5.00")})
	err := o.Validate(context.Background())
	require.Error(t, err, "item without reference or name")

	o.Items = o.Items[:1]
	o.AddItem(Item{Name: "Масло", Quantity: m("0"), PurchasePrice: m("5.00")})
	require.Error(t, o.Validate(context.Background()), "zero quantity")
}

func TestOrder_AddItem_AssignsLineNumbers(t *testing.T) {
	o := New()
	o.AddItem(Item{Name: "А", Quantity: m("1"), PurchasePrice: m("1")})
	o.AddItem(Item{Name: "Б", Quantity: m("1"), PurchasePrice: m("1")})

	assert.Equal(t, 1, o.Items[0].LineNo)
	assert.Equal(t, 2, o.Items[1].LineNo)
	assert.False(t, id.IsNil(o.Items[0].LineID))
}

func TestOrder_Totals(t *testing.T) {
	o := New()
	o.AddItem(Item{Name: "Накладки", Quantity: m("3"), PurchasePrice: m("10.00"), IncludeVAT: true})
	o.AddItem(Item{Name: "Труд", Quantity: m("1"), PurchasePrice: m("45.50"), IncludeVAT: true, IsLabor: true})

	totals := o.Totals()
	assert.True(t, totals.Subtotal.Equal(m("75.50")))
	assert.True(t, totals.VATAmount.Equal(m("15.10")))
	assert.True(t, totals.Total.Equal(m("90.60")))
	assert.True(t, totals.LaborTotal.Equal(m("45.50")))
}

func TestOrder_Totals_Empty(t *testing.T) {
	o := New()
	totals := o.Totals()
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.VATAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}
