package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
)

func TestDefaultDueDate(t *testing.T) {
	issued := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	due := DefaultDueDate(issued)
	assert.Equal(t, time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC), due)
}

func TestInvoice_Validate(t *testing.T) {
	valid := func() *Invoice {
		issued := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		return &Invoice{
			BaseDocument: entity.NewBaseDocument(),
			OrderID:      id.New(),
			Number:       "1",
			InvoiceDate:  issued,
			DueDate:      DefaultDueDate(issued),
			ClientName:   "Авто Сервиз ЕООД",
		}
	}

	require.NoError(t, valid().Validate(context.Background()))

	inv := valid()
	inv.OrderID = id.Nil()
	require.Error(t, inv.Validate(context.Background()))

	inv = valid()
	inv.Number = ""
	require.Error(t, inv.Validate(context.Background()))

	inv = valid()
	inv.DueDate = inv.InvoiceDate.AddDate(0, 0, -1)
	require.Error(t, inv.Validate(context.Background()))

	inv = valid()
	inv.ClientName = ""
	require.Error(t, inv.Validate(context.Background()))
}
