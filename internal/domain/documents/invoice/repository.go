package invoice

import (
	"context"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// ListFilter filters invoice lists.
type ListFilter struct {
	domain.ListFilter

	DateFrom *time.Time
	DateTo   *time.Time
}

// Repository defines the interface for Invoice persistence.
// Invoices are insert-only snapshots; there is no Update.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	GetByOrderID(ctx context.Context, orderID id.ID) (*Invoice, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)
}
