package hr

import (
	"context"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// ListFilter filters days-off lists.
type ListFilter struct {
	domain.ListFilter

	EmployeeID *id.ID
	Type       *LeaveType
	Approved   *bool
	From       *time.Time
	To         *time.Time
}

// Repository defines the interface for DaysOff persistence.
type Repository interface {
	Create(ctx context.Context, d *DaysOff) error
	GetByID(ctx context.Context, id id.ID) (*DaysOff, error)
	Update(ctx context.Context, d *DaysOff) error
	Delete(ctx context.Context, id id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*DaysOff], error)

	// ListVacationsForYear returns approved vacation records of the
	// employee starting in the given calendar year.
	ListVacationsForYear(ctx context.Context, employeeID id.ID, year int) ([]*DaysOff, error)
}
