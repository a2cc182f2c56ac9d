package employee

import (
	"context"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// Repository defines the interface for Employee persistence.
type Repository interface {
	domain.CatalogRepository[*Employee]

	// GetForUpdate retrieves an employee with row lock (leave recompute).
	GetForUpdate(ctx context.Context, id id.ID) (*Employee, error)

	// SetLeaveUsed stores the recomputed current-year leave cache.
	SetLeaveUsed(ctx context.Context, id id.ID, days int) error
}
