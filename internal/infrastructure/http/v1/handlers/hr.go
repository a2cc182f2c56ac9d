package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/hr"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// DaysOffHandler handles HTTP requests for leave records.
type DaysOffHandler struct {
	*BaseHandler
	service *hr.Service
}

// NewDaysOffHandler creates a new days-off handler.
func NewDaysOffHandler(base *BaseHandler, service *hr.Service) *DaysOffHandler {
	return &DaysOffHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /days-off
func (h *DaysOffHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := hr.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-start_date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if employeeID := c.Query("employeeId"); employeeID != "" {
		parsed, err := id.Parse(employeeID)
		if err == nil {
			filter.EmployeeID = &parsed
		}
	}

	if leaveType := c.Query("type"); leaveType != "" {
		val := hr.LeaveType(leaveType)
		filter.Type = &val
	}

	if approved := c.Query("approved"); approved != "" {
		val := approved == "true"
		filter.Approved = &val
	}

	if from := c.Query("from"); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &parsed
		}
	}

	if to := c.Query("to"); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &parsed
		}
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, d := range result.Items {
		items[i] = dto.FromDaysOff(d)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /days-off/:id
func (h *DaysOffHandler) Get(c *gin.Context) {
	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDaysOff(d))
}

// Create handles POST /days-off
func (h *DaysOffHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateDaysOffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, d); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromDaysOff(d))
}

// Update handles PUT /days-off/:id
func (h *DaysOffHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateDaysOffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := h.service.GetByID(ctx, recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(d); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, d); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDaysOff(d))
}

// Delete handles DELETE /days-off/:id
func (h *DaysOffHandler) Delete(c *gin.Context) {
	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), recordID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Approve handles POST /days-off/:id/approve
func (h *DaysOffHandler) Approve(c *gin.Context) {
	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ApproveDaysOffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := h.service.Approve(c.Request.Context(), recordID, req.ApprovedBy)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDaysOff(d))
}

// ListForEmployee handles GET /employees/:id/days-off - the
// employee's leave records, newest first.
func (h *DaysOffHandler) ListForEmployee(c *gin.Context) {
	employeeID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	filter := hr.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = "-start_date"
	filter.EmployeeID = &employeeID

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, d := range result.Items {
		items[i] = dto.FromDaysOff(d)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// LeaveSummary handles GET /employees/:id/leave - the employee's
// vacation allowance and usage for the current year.
func (h *DaysOffHandler) LeaveSummary(c *gin.Context) {
	employeeID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), employeeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, summary)
}
