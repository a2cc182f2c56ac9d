package sklad

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/types"
)

func TestNormalizeArticleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc123", "ABC123"},
		{"  bp-4455 ", "BP-4455"},
		{"ABC123", "ABC123"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeArticleNumber(tc.in))
	}
}

func TestItem_Validate_NormalizesOnWrite(t *testing.T) {
	item := NewItem("abc123", "Маслен филтър")
	assert.Equal(t, "ABC123", item.ArticleNumber)

	// Normalization also runs inside Validate for items built by hand.
	item2 := &Item{}
	item2.Name = "Накладки"
	item2.ArticleNumber = "xy-99"
	require.NoError(t, item2.Validate(context.Background()))
	assert.Equal(t, "XY-99", item2.ArticleNumber)
	assert.Equal(t, DefaultUnit, item2.Unit)
}

func TestItem_Validate_Errors(t *testing.T) {
	item := NewItem("", "Без артикул")
	err := item.Validate(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	item = NewItem("A1", "Отрицателно количество")
	item.Quantity = types.MustMoney("-1")
	require.Error(t, item.Validate(context.Background()))
}

func TestItem_TotalValue(t *testing.T) {
	item := NewItem("A1", "Масло 5W30")
	item.Quantity = types.MustMoney("2.5")
	item.PurchasePrice = types.MustMoney("18.40")

	assert.True(t, item.TotalValue().Equal(types.MustMoney("46.00")))
}
