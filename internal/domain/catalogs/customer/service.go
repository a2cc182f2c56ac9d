package customer

import (
	"context"
	"fmt"
	"strconv"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
)

// Service provides business logic for the Customer catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "customer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate assigns the sequential number and checks БУЛСТАТ uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, c *Customer) error {
	if c.Number == 0 {
		num, err := s.repo.NextNumber(ctx)
		if err != nil {
			return fmt.Errorf("assign customer number: %w", err)
		}
		c.Number = num
	}
	if c.Code == "" {
		c.Code = strconv.FormatInt(c.Number, 10)
	}

	return s.checkBulstatUnique(ctx, c)
}

// prepareForUpdate checks БУЛСТАТ uniqueness excluding the current record.
func (s *Service) prepareForUpdate(ctx context.Context, c *Customer) error {
	return s.checkBulstatUnique(ctx, c)
}

func (s *Service) checkBulstatUnique(ctx context.Context, c *Customer) error {
	if c.Bulstat == nil || *c.Bulstat == "" {
		return nil
	}

	existing, err := s.repo.FindByBulstat(ctx, *c.Bulstat)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewConflict("customer with this БУЛСТАТ already exists").
			WithDetail("bulstat", *c.Bulstat)
	}
	return nil
}

// FindByBulstat retrieves a customer by БУЛСТАТ.
func (s *Service) FindByBulstat(ctx context.Context, bulstat string) (*Customer, error) {
	return s.repo.FindByBulstat(ctx, bulstat)
}

// GetForUpdate retrieves a customer with row lock.
func (s *Service) GetForUpdate(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetForUpdate(ctx, customerID)
}
