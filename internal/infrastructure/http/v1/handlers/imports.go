package handlers

import (
	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/imports"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// ImportsHandler handles HTTP requests for the import log and the
// duplicate-import check used by the importer before a run.
type ImportsHandler struct {
	*BaseHandler
	service *imports.Service
}

// NewImportsHandler creates a new imports handler.
func NewImportsHandler(base *BaseHandler, service *imports.Service) *ImportsHandler {
	return &ImportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Check handles GET /imports/check?provider=starts94&invoiceNumber=123
func (h *ImportsHandler) Check(c *gin.Context) {
	var req dto.CheckImportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	prior, err := h.service.DuplicateDetails(c.Request.Context(), req.Provider, req.InvoiceNumber, req.InvoiceDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.CheckImportResponse{
		Identifier:  imports.Identifier(req.Provider, req.InvoiceNumber, req.InvoiceDate),
		IsDuplicate: prior != nil,
		Prior:       prior,
	})
}

// List handles GET /imports
func (h *ImportsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := imports.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-import_date")

	if provider := c.Query("provider"); provider != "" {
		filter.Provider = &provider
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, l := range result.Items {
		items[i] = dto.FromImportLog(l)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /imports/:id
func (h *ImportsHandler) Get(c *gin.Context) {
	logID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), logID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromImportLog(l))
}
