package dto

import (
	"time"

	"avtoservice/internal/domain/events"
)

// --- Request DTOs ---

// CreateEventRequest is the request body for creating a calendar entry.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Type        events.EventType `json:"type" binding:"required"`
	StartTime   time.Time        `json:"startTime" binding:"required"`
	EndTime     time.Time        `json:"endTime" binding:"required"`
	AllDay      bool             `json:"allDay"`
	CustomerID  *string          `json:"customerId"`
	EmployeeID  *string          `json:"employeeId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateEventRequest) ToEntity() (*events.Event, error) {
	e := events.New(r.Title, r.Type, r.StartTime, r.EndTime)
	e.Description = r.Description
	e.AllDay = r.AllDay

	var err error
	if e.CustomerID, err = parseOptionalID(r.CustomerID); err != nil {
		return nil, err
	}
	if e.EmployeeID, err = parseOptionalID(r.EmployeeID); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEventRequest is the request body for updating a calendar entry.
type UpdateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Type        events.EventType `json:"type" binding:"required"`
	StartTime   time.Time        `json:"startTime" binding:"required"`
	EndTime     time.Time        `json:"endTime" binding:"required"`
	AllDay      bool             `json:"allDay"`
	CustomerID  *string          `json:"customerId"`
	EmployeeID  *string          `json:"employeeId"`
	Completed   bool             `json:"completed"`
	Version     int              `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateEventRequest) ApplyTo(e *events.Event) error {
	e.Title = r.Title
	e.Description = r.Description
	e.Type = r.Type
	e.StartTime = r.StartTime
	e.EndTime = r.EndTime
	e.AllDay = r.AllDay
	e.Completed = r.Completed
	e.Version = r.Version

	var err error
	if e.CustomerID, err = parseOptionalID(r.CustomerID); err != nil {
		return err
	}
	if e.EmployeeID, err = parseOptionalID(r.EmployeeID); err != nil {
		return err
	}
	return nil
}

// --- Response DTOs ---

// EventResponse is the response body for a calendar entry.
type EventResponse struct {
	BaseResponse
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Type        events.EventType `json:"type"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	AllDay      bool             `json:"allDay"`
	CustomerID  *string          `json:"customerId,omitempty"`
	EmployeeID  *string          `json:"employeeId,omitempty"`
	Completed   bool             `json:"completed"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// FromEvent creates response DTO from domain entity.
func FromEvent(e *events.Event) *EventResponse {
	resp := &EventResponse{
		BaseResponse: FromBaseEntity(e.BaseEntity),
		Title:        e.Title,
		Description:  e.Description,
		Type:         e.Type,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		AllDay:       e.AllDay,
		Completed:    e.Completed,
		CreatedAt:    e.CreatedAt,
	}
	if e.CustomerID != nil {
		s := e.CustomerID.String()
		resp.CustomerID = &s
	}
	if e.EmployeeID != nil {
		s := e.EmployeeID.String()
		resp.EmployeeID = &s
	}
	return resp
}
