package car

import (
	"context"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
)

// CustomerExistsFunc checks that the owning customer exists. A func is
// injected instead of the customer repository to keep the catalog
// packages decoupled.
type CustomerExistsFunc func(ctx context.Context, id id.ID) (bool, error)

// Service provides business logic for the Car catalog.
type Service struct {
	*domain.CatalogService[*Car]
	repo           Repository
	customerExists CustomerExistsFunc
}

// NewService creates a new Car service.
func NewService(repo Repository, txm tx.Manager, customerExists CustomerExistsFunc) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Car]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "car",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		customerExists: customerExists,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare verifies the owner exists and the (customer, VIN) pair is unique.
func (s *Service) prepare(ctx context.Context, c *Car) error {
	exists, err := s.customerExists(ctx, c.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("customer", c.CustomerID.String())
	}

	if c.VIN != "" {
		existing, err := s.repo.FindByVIN(ctx, c.CustomerID, c.VIN)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil
			}
			return err
		}
		if existing.ID != c.ID {
			return apperror.NewConflict("this customer already has a car with this VIN").
				WithDetail("vin", c.VIN)
		}
	}

	return nil
}

// ListByCustomer retrieves all cars of a customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID id.ID) ([]*Car, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
