// Package events provides the planner calendar: appointments,
// deliveries, inspections and the like.
package events

import (
	"context"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
)

// EventType classifies a calendar entry.
type EventType string

const (
	TypeMeeting     EventType = "meeting"
	TypeAppointment EventType = "appointment"
	TypeMaintenance EventType = "maintenance"
	TypeInspection  EventType = "inspection"
	TypeDelivery    EventType = "delivery"
	TypeOther       EventType = "other"
)

// Event represents one calendar entry.
type Event struct {
	entity.BaseDocument

	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	Type        EventType `db:"type" json:"type"`

	StartTime time.Time `db:"start_time" json:"startTime"`
	EndTime   time.Time `db:"end_time" json:"endTime"`

	// AllDay events ignore the time-of-day parts
	AllDay bool `db:"all_day" json:"allDay"`

	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`
	EmployeeID *id.ID `db:"employee_id" json:"employeeId,omitempty"`

	Completed bool `db:"completed" json:"completed"`
}

// New creates a calendar entry.
func New(title string, eventType EventType, start, end time.Time) *Event {
	return &Event{
		BaseDocument: entity.NewBaseDocument(),
		Title:        title,
		Type:         eventType,
		StartTime:    start,
		EndTime:      end,
	}
}

// Validate implements entity.Validatable.
func (e *Event) Validate(ctx context.Context) error {
	if e.Title == "" {
		return apperror.NewValidation("title is required").
			WithDetail("field", "title")
	}

	if !isValidEventType(e.Type) {
		return apperror.NewValidation("invalid event type").
			WithDetail("field", "type").
			WithDetail("value", string(e.Type))
	}

	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return apperror.NewValidation("start and end times are required").
			WithDetail("field", "startTime")
	}

	if !e.StartTime.Before(e.EndTime) {
		return apperror.NewValidation("event must end after it starts").
			WithDetail("startTime", e.StartTime.Format(time.RFC3339)).
			WithDetail("endTime", e.EndTime.Format(time.RFC3339))
	}

	return nil
}

func isValidEventType(t EventType) bool {
	switch t {
	case TypeMeeting, TypeAppointment, TypeMaintenance, TypeInspection, TypeDelivery, TypeOther:
		return true
	}
	return false
}
