package dto

import (
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/catalogs/sklad"
)

// --- Request DTOs ---

// CreateSkladItemRequest is the request body for creating a stock item.
type CreateSkladItemRequest struct {
	ArticleNumber string       `json:"articleNumber" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Unit          string       `json:"unit"`
	Quantity      *types.Money `json:"quantity"`
	PurchasePrice *types.Money `json:"purchasePrice"`
	Supplier      *string      `json:"supplier"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSkladItemRequest) ToEntity() *sklad.Item {
	item := sklad.NewItem(r.ArticleNumber, r.Name)
	if r.Unit != "" {
		item.Unit = r.Unit
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.PurchasePrice != nil {
		item.PurchasePrice = *r.PurchasePrice
	}
	item.Supplier = r.Supplier
	return item
}

// UpdateSkladItemRequest is the request body for updating a stock item.
type UpdateSkladItemRequest struct {
	ArticleNumber string      `json:"articleNumber" binding:"required"`
	Name          string      `json:"name" binding:"required"`
	Unit          string      `json:"unit"`
	Quantity      types.Money `json:"quantity"`
	PurchasePrice types.Money `json:"purchasePrice"`
	Supplier      *string     `json:"supplier"`
	Version       int         `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSkladItemRequest) ApplyTo(item *sklad.Item) {
	item.ArticleNumber = r.ArticleNumber
	item.Name = r.Name
	item.Unit = r.Unit
	item.Quantity = r.Quantity
	item.PurchasePrice = r.PurchasePrice
	item.Supplier = r.Supplier
	item.Version = r.Version
}

// AdjustQuantityRequest changes the on-hand quantity by a delta.
type AdjustQuantityRequest struct {
	ArticleNumber string      `json:"articleNumber" binding:"required"`
	Delta         types.Money `json:"delta" binding:"required"`
}

// --- Response DTOs ---

// SkladItemResponse is the response body for a stock item.
type SkladItemResponse struct {
	BaseResponse
	Code          string      `json:"code"`
	Name          string      `json:"name"`
	ArticleNumber string      `json:"articleNumber"`
	Unit          string      `json:"unit"`
	Quantity      types.Money `json:"quantity"`
	PurchasePrice types.Money `json:"purchasePrice"`
	TotalValue    types.Money `json:"totalValue"`
	Supplier      *string     `json:"supplier,omitempty"`
}

// FromSkladItem creates response DTO from domain entity.
func FromSkladItem(item *sklad.Item) *SkladItemResponse {
	return &SkladItemResponse{
		BaseResponse:  FromBaseEntity(item.BaseEntity),
		Code:          item.Code,
		Name:          item.Name,
		ArticleNumber: item.ArticleNumber,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		PurchasePrice: item.PurchasePrice,
		TotalValue:    item.TotalValue(),
		Supplier:      item.Supplier,
	}
}
