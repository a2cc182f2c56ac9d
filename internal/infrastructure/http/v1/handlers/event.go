package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/events"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// EventHandler handles HTTP requests for calendar events.
type EventHandler struct {
	*BaseHandler
	service *events.Service
}

// NewEventHandler creates a new event handler.
func NewEventHandler(base *BaseHandler, service *events.Service) *EventHandler {
	return &EventHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := events.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "start_time")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if eventType := c.Query("type"); eventType != "" {
		val := events.EventType(eventType)
		filter.Type = &val
	}

	if employeeID := c.Query("employeeId"); employeeID != "" {
		parsed, err := id.Parse(employeeID)
		if err == nil {
			filter.EmployeeID = &parsed
		}
	}

	if customerID := c.Query("customerId"); customerID != "" {
		parsed, err := id.Parse(customerID)
		if err == nil {
			filter.CustomerID = &parsed
		}
	}

	if completed := c.Query("completed"); completed != "" {
		val := completed == "true"
		filter.Completed = &val
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

	h.respondList(c, result)
}

// Week handles GET /events/week?day=2026-03-02 - all events in the
// Monday-to-Sunday week containing the given day.
func (h *EventHandler) Week(c *gin.Context) {
	day := time.Now()
	if dayStr := c.Query("day"); dayStr != "" {
		parsed, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid day format, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	result, err := h.service.Week(c.Request.Context(), day)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.respondList(c, result)
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), eventID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromEvent(e))
}

// Create handles POST /events
func (h *EventHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateEventRequest
	if !h.BindJSON(c, &req) {
		return
	}

	e, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, e); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromEvent(e))
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindJSON(c, &req) {
		return
	}

	e, err := h.service.GetByID(ctx, eventID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(e); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, e); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromEvent(e))
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), eventID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Complete handles POST /events/:id/complete
func (h *EventHandler) Complete(c *gin.Context) {
	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e, err := h.service.Complete(c.Request.Context(), eventID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromEvent(e))
}

func (h *EventHandler) respondList(c *gin.Context, result domain.ListResult[*events.Event]) {
	items := make([]any, len(result.Items))
	for i, e := range result.Items {
		items[i] = dto.FromEvent(e)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
