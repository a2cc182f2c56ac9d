package car

import (
	"context"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// Repository defines the interface for Car persistence.
type Repository interface {
	domain.CatalogRepository[*Car]

	// ListByCustomer retrieves all cars of a customer.
	ListByCustomer(ctx context.Context, customerID id.ID) ([]*Car, error)

	// FindByVIN retrieves a car of the given customer by VIN.
	FindByVIN(ctx context.Context, customerID id.ID, vin string) (*Car, error)
}
