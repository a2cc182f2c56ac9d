package customer

import (
	"context"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// FindByBulstat retrieves a customer by БУЛСТАТ (unique when set).
	FindByBulstat(ctx context.Context, bulstat string) (*Customer, error)

	// NextNumber returns the next sequential customer number.
	NextNumber(ctx context.Context) (int64, error)

	// GetForUpdate retrieves a customer with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Customer, error)
}
