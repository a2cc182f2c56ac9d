package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/documents/invoice"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles HTTP requests for invoice documents.
// Invoices are issued by converting an order and are read-only after
// that; there are no update or delete endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ConvertOrder handles POST /orders/:id/invoice - issues an invoice
// from the order.
func (h *InvoiceHandler) ConvertOrder(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ConvertOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	convReq := invoice.ConvertRequest{
		OrderID: orderID,
		DueDate: req.DueDate,
	}
	if req.InvoiceDate != nil {
		convReq.InvoiceDate = *req.InvoiceDate
	} else {
		convReq.InvoiceDate = time.Now()
	}

	inv, err := h.service.ConvertOrder(ctx, convReq)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInvoice(inv))
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := invoice.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-invoice_date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			filter.DateFrom = &parsed
		}
	}

	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			filter.DateTo = &parsed
		}
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, inv := range result.Items {
		items[i] = dto.FromInvoice(inv)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	invID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	inv, err := h.service.GetByID(c.Request.Context(), invID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// GetByNumber handles GET /invoices/by-number/:number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	inv, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// GetForOrder handles GET /orders/:id/invoice - the invoice issued for
// an order, if any.
func (h *InvoiceHandler) GetForOrder(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	inv, err := h.service.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}
