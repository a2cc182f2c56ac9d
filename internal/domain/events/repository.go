package events

import (
	"context"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// ListFilter filters calendar queries.
type ListFilter struct {
	domain.ListFilter

	// From/To select events overlapping the window
	From *time.Time
	To   *time.Time

	Type       *EventType
	EmployeeID *id.ID
	CustomerID *id.ID
	Completed  *bool
}

// Repository defines the interface for Event persistence.
type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id id.ID) (*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Event], error)
}
