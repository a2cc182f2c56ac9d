// Package sklad provides the stock item catalog (Справочник "Склад").
// Article numbers are normalized to uppercase on write so that
// duplicate checks are effectively case-insensitive.
package sklad

import (
	"context"
	"strings"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/types"
)

// DefaultUnit is the default measurement unit (брой).
const DefaultUnit = "бр"

// Item represents a stock item in the shop's warehouse.
type Item struct {
	entity.Catalog

	// ArticleNumber is the supplier part number, unique, stored uppercase
	ArticleNumber string `db:"article_number" json:"articleNumber"`

	// Unit of measure, default "бр"
	Unit string `db:"unit" json:"unit"`

	// Quantity on hand; decimal because oils and fluids sell fractionally
	Quantity types.Money `db:"quantity" json:"quantity"`

	// PurchasePrice is the net unit purchase price in BGN
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// Supplier is the provider the item was last imported from
	Supplier *string `db:"supplier" json:"supplier,omitempty"`
}

// NewItem creates a stock item with the article number normalized.
func NewItem(articleNumber, name string) *Item {
	return &Item{
		Catalog:       entity.NewCatalog("", name),
		ArticleNumber: NormalizeArticleNumber(articleNumber),
		Unit:          DefaultUnit,
		Quantity:      types.Zero(),
		PurchasePrice: types.Zero(),
	}
}

// NormalizeArticleNumber trims and uppercases an article number.
func NormalizeArticleNumber(articleNumber string) string {
	return strings.ToUpper(strings.TrimSpace(articleNumber))
}

// Normalize applies write-time normalization rules.
func (i *Item) Normalize() {
	i.ArticleNumber = NormalizeArticleNumber(i.ArticleNumber)
	if i.Unit == "" {
		i.Unit = DefaultUnit
	}
	if i.Code == "" {
		i.Code = i.ArticleNumber
	}
}

// Validate implements entity.Validatable interface.
func (i *Item) Validate(ctx context.Context) error {
	i.Normalize()

	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	if i.ArticleNumber == "" {
		return apperror.NewValidation("article number is required").
			WithDetail("field", "articleNumber")
	}

	if i.Quantity.IsNegative() {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity").
			WithDetail("value", i.Quantity.String())
	}

	if i.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price cannot be negative").
			WithDetail("field", "purchasePrice")
	}

	return nil
}

// TotalValue returns quantity × purchase price. Computed on read,
// never stored.
func (i *Item) TotalValue() types.Money {
	return i.Quantity.Mul(i.PurchasePrice)
}
