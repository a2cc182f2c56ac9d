package dto

import (
	"time"

	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/documents/invoice"
)

// --- Request DTOs ---

// ConvertOrderRequest is the request body for issuing an invoice from
// an order.
type ConvertOrderRequest struct {
	InvoiceDate *time.Time `json:"invoiceDate"`
	DueDate     *time.Time `json:"dueDate"`
}

// --- Response DTOs ---

// InvoiceResponse is the response body for an invoice.
type InvoiceResponse struct {
	BaseResponse
	OrderID       string      `json:"orderId"`
	Number        string      `json:"number"`
	InvoiceDate   time.Time   `json:"invoiceDate"`
	DueDate       time.Time   `json:"dueDate"`
	ClientName    string      `json:"clientName"`
	ClientAddress string      `json:"clientAddress,omitempty"`
	ClientPhone   string      `json:"clientPhone,omitempty"`
	ClientTaxNum  string      `json:"clientTaxNumber,omitempty"`
	ClientBulstat string      `json:"clientBulstat,omitempty"`
	CarBrand      string      `json:"carBrand,omitempty"`
	CarModel      string      `json:"carModel,omitempty"`
	CarPlate      string      `json:"carPlate,omitempty"`
	CarVIN        string      `json:"carVin,omitempty"`
	Subtotal      types.Money `json:"subtotal"`
	VATAmount     types.Money `json:"vatAmount"`
	TotalAmount   types.Money `json:"totalAmount"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// FromInvoice creates response DTO from domain entity.
func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		BaseResponse:  FromBaseEntity(inv.BaseEntity),
		OrderID:       inv.OrderID.String(),
		Number:        inv.Number,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		ClientName:    inv.ClientName,
		ClientAddress: inv.ClientAddress,
		ClientPhone:   inv.ClientPhone,
		ClientTaxNum:  inv.ClientTaxNum,
		ClientBulstat: inv.ClientBulstat,
		CarBrand:      inv.CarBrand,
		CarModel:      inv.CarModel,
		CarPlate:      inv.CarPlate,
		CarVIN:        inv.CarVIN,
		Subtotal:      inv.Subtotal,
		VATAmount:     inv.VATAmount,
		TotalAmount:   inv.TotalAmount,
		CreatedAt:     inv.CreatedAt,
	}
}
