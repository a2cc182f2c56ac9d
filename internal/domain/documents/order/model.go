// Package order provides the repair Order document (Поръчка).
// An order starts life as an offer, may be re-issued, and is finally
// converted to an invoice.
package order

import (
	"context"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/pricing"
)

// Status of an order document.
type Status string

const (
	StatusOffer   Status = "offer"   // Оферта
	StatusInvoice Status = "invoice" // Фактурирана
	StatusOrder   Status = "order"   // Поръчка
)

// Order represents a repair order. The client and car are either
// references into the catalogs or free-text standalone fields; walk-in
// customers are not forced into the customer catalog.
type Order struct {
	entity.Document

	Status Status `db:"status" json:"status"`

	// Catalog references (optional)
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`
	CarID      *id.ID `db:"car_id" json:"carId,omitempty"`

	// Standalone client fields for walk-ins
	ClientName    string `db:"client_name" json:"clientName,omitempty"`
	ClientPhone   string `db:"client_phone" json:"clientPhone,omitempty"`
	ClientAddress string `db:"client_address" json:"clientAddress,omitempty"`

	// Standalone car description, e.g. "Opel Astra СВ1234АХ"
	CarInfo string `db:"car_info" json:"carInfo,omitempty"`

	// Mileage at intake, km
	Mileage *int `db:"mileage" json:"mileage,omitempty"`

	// EmployeeIDs are the assigned mechanics (stored in a join table)
	EmployeeIDs []id.ID `db:"-" json:"employeeIds,omitempty"`

	// Items is the table part (cascade-deleted with the order)
	Items []Item `db:"-" json:"items"`
}

// Item represents one order line: a stock part, a free-text part, or
// a labor charge.
type Item struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// SkladID references a stock item; nil for free-text lines
	SkladID *id.ID `db:"sklad_id" json:"skladId,omitempty"`

	// Standalone article fields (copied from the stock item or typed in)
	ArticleNumber string `db:"article_number" json:"articleNumber,omitempty"`
	Name          string `db:"name" json:"name"`
	Unit          string `db:"unit" json:"unit"`

	// PurchasePrice is the net unit price
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// PriceWithVAT is the explicit gross unit price, when known
	PriceWithVAT *types.Money `db:"price_with_vat" json:"priceWithVat,omitempty"`

	Quantity types.Money `db:"quantity" json:"quantity"`

	IsLabor    bool `db:"is_labor" json:"isLabor"`
	IncludeVAT bool `db:"include_vat" json:"includeVat"`
}

// New creates an empty offer for today.
func New() *Order {
	return &Order{
		Document: entity.NewDocument(),
		Status:   StatusOffer,
		Items:    make([]Item, 0),
	}
}

// AddItem appends a line and assigns its number.
func (o *Order) AddItem(item Item) {
	if id.IsNil(item.LineID) {
		item.LineID = id.New()
	}
	item.LineNo = len(o.Items) + 1
	o.Items = append(o.Items, item)
}

// PricingLines maps the table part to the pricing engine's view.
func (o *Order) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, pricing.Line{
			UnitPrice:    it.PurchasePrice,
			PriceWithVAT: it.PriceWithVAT,
			Quantity:     it.Quantity,
			IncludeVAT:   it.IncludeVAT,
			IsLabor:      it.IsLabor,
		})
	}
	return lines
}

// Totals computes the order's financial summary from its lines.
func (o *Order) Totals() pricing.Totals {
	return pricing.OrderTotals(o.PricingLines())
}

// HasClient reports whether the order identifies its client, either by
// catalog reference or by the minimum standalone field (client name).
func (o *Order) HasClient() bool {
	if o.CustomerID != nil && !id.IsNil(*o.CustomerID) {
		return true
	}
	return o.ClientName != ""
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	if !o.HasClient() {
		return apperror.NewValidation("order needs a customer reference or a client name").
			WithDetail("field", "clientName")
	}

	// A car reference without a customer reference makes no sense.
	if o.CarID != nil && !id.IsNil(*o.CarID) {
		if o.CustomerID == nil || id.IsNil(*o.CustomerID) {
			return apperror.NewValidation("car reference requires a customer reference").
				WithDetail("field", "carId")
		}
	}

	for i, item := range o.Items {
		if err := item.validate(); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				return appErr.WithDetail("lineNo", i+1)
			}
			return err
		}
	}

	return nil
}

func (it *Item) validate() error {
	if (it.SkladID == nil || id.IsNil(*it.SkladID)) && it.Name == "" {
		return apperror.NewValidation("item needs a stock reference or a name").
			WithDetail("field", "items")
	}
	if !it.Quantity.IsPositive() {
		return apperror.NewValidation("item quantity must be positive").
			WithDetail("field", "items")
	}
	if it.PurchasePrice.IsNegative() {
		return apperror.NewValidation("item price cannot be negative").
			WithDetail("field", "items")
	}
	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusOffer, StatusInvoice, StatusOrder:
		return true
	}
	return false
}
