package order

import (
	"context"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// ListFilter filters order lists.
type ListFilter struct {
	domain.ListFilter

	Status     *Status
	CustomerID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Repository defines the interface for Order persistence.
// Lines and employee assignments are table parts saved with the
// document in the same transaction.
type Repository interface {
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, id id.ID) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	Delete(ctx context.Context, id id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error)

	// Lock takes a row lock on the order for the rest of the current
	// transaction. Returns not-found when the order does not exist.
	Lock(ctx context.Context, id id.ID) error

	// SaveItems replaces the order's table part.
	SaveItems(ctx context.Context, orderID id.ID, items []Item) error

	// GetItems loads the table part ordered by line number.
	GetItems(ctx context.Context, orderID id.ID) ([]Item, error)

	// SaveEmployees replaces the mechanic assignments.
	SaveEmployees(ctx context.Context, orderID id.ID, employeeIDs []id.ID) error

	// GetEmployees loads the assigned mechanic IDs.
	GetEmployees(ctx context.Context, orderID id.ID) ([]id.ID, error)
}
