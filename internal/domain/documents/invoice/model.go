// Package invoice provides the Invoice document: a point-in-time
// snapshot of an order. Once created, an invoice is immutable and is
// never re-derived from live customer or car records.
package invoice

import (
	"context"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/types"
)

// PaymentTermDays is the default payment term for computing due_date.
const PaymentTermDays = 30

// Invoice is the financial document issued from an order.
type Invoice struct {
	entity.BaseDocument

	// OrderID references the source order (one invoice per order)
	OrderID id.ID `db:"order_id" json:"orderId"`

	// Number is the sequential invoice number, unique and immutable
	Number string `db:"number" json:"number"`

	// InvoiceDate is the issue date
	InvoiceDate time.Time `db:"invoice_date" json:"invoiceDate"`

	// DueDate defaults to InvoiceDate + 30 days
	DueDate time.Time `db:"due_date" json:"dueDate"`

	// Client snapshot, copied at conversion time
	ClientName    string `db:"client_name" json:"clientName"`
	ClientAddress string `db:"client_address" json:"clientAddress,omitempty"`
	ClientPhone   string `db:"client_phone" json:"clientPhone,omitempty"`
	ClientTaxNum  string `db:"client_tax_number" json:"clientTaxNumber,omitempty"`
	ClientBulstat string `db:"client_bulstat" json:"clientBulstat,omitempty"`

	// Car snapshot
	CarBrand string `db:"car_brand" json:"carBrand,omitempty"`
	CarModel string `db:"car_model" json:"carModel,omitempty"`
	CarPlate string `db:"car_plate" json:"carPlate,omitempty"`
	CarVIN   string `db:"car_vin" json:"carVin,omitempty"`

	// Financial snapshot computed by the pricing engine at conversion
	Subtotal    types.Money `db:"subtotal" json:"subtotal"`
	VATAmount   types.Money `db:"vat_amount" json:"vatAmount"`
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(inv.OrderID) {
		return apperror.NewValidation("invoice must reference an order").
			WithDetail("field", "orderId")
	}
	if inv.Number == "" {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "number")
	}
	if inv.InvoiceDate.IsZero() {
		return apperror.NewValidation("invoice date is required").
			WithDetail("field", "invoiceDate")
	}
	if inv.DueDate.Before(inv.InvoiceDate) {
		return apperror.NewValidation("due date cannot precede the invoice date").
			WithDetail("field", "dueDate")
	}
	if inv.ClientName == "" {
		return apperror.NewValidation("client name snapshot is required").
			WithDetail("field", "clientName")
	}
	return nil
}

// DefaultDueDate returns the standard payment deadline.
func DefaultDueDate(invoiceDate time.Time) time.Time {
	return invoiceDate.AddDate(0, 0, PaymentTermDays)
}
