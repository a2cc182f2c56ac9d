package employee

import (
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
)

// Service provides business logic for the Employee catalog.
// Leave accrual lives in the hr package; this service only covers
// catalog CRUD.
type Service struct {
	*domain.CatalogService[*Employee]
	repo Repository
}

// NewService creates a new Employee service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "employee",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
