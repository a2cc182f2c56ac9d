package dto

import (
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/internal/domain/pricing"
)

// --- Item DTOs ---

// OrderItemRequest is one line of an order request.
type OrderItemRequest struct {
	SkladID       *string      `json:"skladId"`
	ArticleNumber string       `json:"articleNumber"`
	Name          string       `json:"name"`
	Unit          string       `json:"unit"`
	PurchasePrice types.Money  `json:"purchasePrice"`
	PriceWithVAT  *types.Money `json:"priceWithVat"`
	Quantity      types.Money  `json:"quantity"`
	IsLabor       bool         `json:"isLabor"`
	IncludeVAT    bool         `json:"includeVat"`
}

func (r *OrderItemRequest) toItem() (order.Item, error) {
	item := order.Item{
		ArticleNumber: r.ArticleNumber,
		Name:          r.Name,
		Unit:          r.Unit,
		PurchasePrice: r.PurchasePrice,
		PriceWithVAT:  r.PriceWithVAT,
		Quantity:      r.Quantity,
		IsLabor:       r.IsLabor,
		IncludeVAT:    r.IncludeVAT,
	}
	if r.SkladID != nil && *r.SkladID != "" {
		skladID, err := id.Parse(*r.SkladID)
		if err != nil {
			return item, err
		}
		item.SkladID = &skladID
	}
	return item, nil
}

// OrderItemResponse is one line of an order response.
type OrderItemResponse struct {
	LineID        string       `json:"lineId"`
	LineNo        int          `json:"lineNo"`
	SkladID       *string      `json:"skladId,omitempty"`
	ArticleNumber string       `json:"articleNumber,omitempty"`
	Name          string       `json:"name"`
	Unit          string       `json:"unit"`
	PurchasePrice types.Money  `json:"purchasePrice"`
	PriceWithVAT  *types.Money `json:"priceWithVat,omitempty"`
	Quantity      types.Money  `json:"quantity"`
	IsLabor       bool         `json:"isLabor"`
	IncludeVAT    bool         `json:"includeVat"`
}

func fromItem(item order.Item) OrderItemResponse {
	resp := OrderItemResponse{
		LineID:        item.LineID.String(),
		LineNo:        item.LineNo,
		ArticleNumber: item.ArticleNumber,
		Name:          item.Name,
		Unit:          item.Unit,
		PurchasePrice: item.PurchasePrice,
		PriceWithVAT:  item.PriceWithVAT,
		Quantity:      item.Quantity,
		IsLabor:       item.IsLabor,
		IncludeVAT:    item.IncludeVAT,
	}
	if item.SkladID != nil {
		s := item.SkladID.String()
		resp.SkladID = &s
	}
	return resp
}

// --- Request DTOs ---

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	Status        order.Status       `json:"status"`
	Date          *time.Time         `json:"date"`
	CustomerID    *string            `json:"customerId"`
	CarID         *string            `json:"carId"`
	ClientName    string             `json:"clientName"`
	ClientPhone   string             `json:"clientPhone"`
	ClientAddress string             `json:"clientAddress"`
	CarInfo       string             `json:"carInfo"`
	Mileage       *int               `json:"mileage"`
	Comment       string             `json:"comment"`
	EmployeeIDs   []string           `json:"employeeIds"`
	Items         []OrderItemRequest `json:"items"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderRequest) ToEntity() (*order.Order, error) {
	doc := order.New()
	if r.Status != "" {
		doc.Status = r.Status
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.ClientName = r.ClientName
	doc.ClientPhone = r.ClientPhone
	doc.ClientAddress = r.ClientAddress
	doc.CarInfo = r.CarInfo
	doc.Mileage = r.Mileage
	doc.Comment = r.Comment

	var err error
	if doc.CustomerID, err = parseOptionalID(r.CustomerID); err != nil {
		return nil, err
	}
	if doc.CarID, err = parseOptionalID(r.CarID); err != nil {
		return nil, err
	}
	if doc.EmployeeIDs, err = parseIDs(r.EmployeeIDs); err != nil {
		return nil, err
	}

	for _, itemReq := range r.Items {
		item, err := itemReq.toItem()
		if err != nil {
			return nil, err
		}
		doc.AddItem(item)
	}

	return doc, nil
}

// UpdateOrderRequest is the request body for updating an order.
type UpdateOrderRequest struct {
	Status        order.Status       `json:"status" binding:"required"`
	Date          *time.Time         `json:"date"`
	CustomerID    *string            `json:"customerId"`
	CarID         *string            `json:"carId"`
	ClientName    string             `json:"clientName"`
	ClientPhone   string             `json:"clientPhone"`
	ClientAddress string             `json:"clientAddress"`
	CarInfo       string             `json:"carInfo"`
	Mileage       *int               `json:"mileage"`
	Comment       string             `json:"comment"`
	EmployeeIDs   []string           `json:"employeeIds"`
	Items         []OrderItemRequest `json:"items"`
	Version       int                `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrderRequest) ApplyTo(doc *order.Order) error {
	doc.Status = r.Status
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.ClientName = r.ClientName
	doc.ClientPhone = r.ClientPhone
	doc.ClientAddress = r.ClientAddress
	doc.CarInfo = r.CarInfo
	doc.Mileage = r.Mileage
	doc.Comment = r.Comment
	doc.Version = r.Version

	var err error
	if doc.CustomerID, err = parseOptionalID(r.CustomerID); err != nil {
		return err
	}
	if doc.CarID, err = parseOptionalID(r.CarID); err != nil {
		return err
	}
	if doc.EmployeeIDs, err = parseIDs(r.EmployeeIDs); err != nil {
		return err
	}

	doc.Items = doc.Items[:0]
	for _, itemReq := range r.Items {
		item, err := itemReq.toItem()
		if err != nil {
			return err
		}
		doc.AddItem(item)
	}

	return nil
}

// --- Response DTOs ---

// OrderTotalsResponse is the financial summary of an order.
type OrderTotalsResponse struct {
	Subtotal   types.Money `json:"subtotal"`
	VATAmount  types.Money `json:"vatAmount"`
	Total      types.Money `json:"total"`
	LaborTotal types.Money `json:"laborTotal"`
}

func fromTotals(t pricing.Totals) OrderTotalsResponse {
	return OrderTotalsResponse{
		Subtotal:   t.Subtotal,
		VATAmount:  t.VATAmount,
		Total:      t.Total,
		LaborTotal: t.LaborTotal,
	}
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	BaseResponse
	Number        string              `json:"number"`
	Date          time.Time           `json:"date"`
	Status        order.Status        `json:"status"`
	CustomerID    *string             `json:"customerId,omitempty"`
	CarID         *string             `json:"carId,omitempty"`
	ClientName    string              `json:"clientName,omitempty"`
	ClientPhone   string              `json:"clientPhone,omitempty"`
	ClientAddress string              `json:"clientAddress,omitempty"`
	CarInfo       string              `json:"carInfo,omitempty"`
	Mileage       *int                `json:"mileage,omitempty"`
	Comment       string              `json:"comment,omitempty"`
	EmployeeIDs   []string            `json:"employeeIds,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Totals        OrderTotalsResponse `json:"totals"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// FromOrder creates response DTO from domain entity.
func FromOrder(doc *order.Order) *OrderResponse {
	resp := &OrderResponse{
		BaseResponse:  FromBaseEntity(doc.BaseEntity),
		Number:        doc.Number,
		Date:          doc.Date,
		Status:        doc.Status,
		ClientName:    doc.ClientName,
		ClientPhone:   doc.ClientPhone,
		ClientAddress: doc.ClientAddress,
		CarInfo:       doc.CarInfo,
		Mileage:       doc.Mileage,
		Comment:       doc.Comment,
		Items:         make([]OrderItemResponse, 0, len(doc.Items)),
		Totals:        fromTotals(doc.Totals()),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if doc.CustomerID != nil {
		s := doc.CustomerID.String()
		resp.CustomerID = &s
	}
	if doc.CarID != nil {
		s := doc.CarID.String()
		resp.CarID = &s
	}
	for _, employeeID := range doc.EmployeeIDs {
		resp.EmployeeIDs = append(resp.EmployeeIDs, employeeID.String())
	}
	for _, item := range doc.Items {
		resp.Items = append(resp.Items, fromItem(item))
	}
	return resp
}

// --- helpers ---

func parseOptionalID(s *string) (*id.ID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := id.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseIDs(ss []string) ([]id.ID, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	ids := make([]id.ID, 0, len(ss))
	for _, s := range ss {
		parsed, err := id.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
