package domain

import (
	"context"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
)

// CatalogService provides business logic for catalog entities.
// It delegates persistence to the repository and wraps every mutation
// in a transaction so that lifecycle hooks and the write itself either
// all commit or all roll back.
type CatalogService[T entity.Validatable] struct {
	repo       CatalogRepository[T]
	txm        tx.Manager
	hooks      *HookRegistry[T]
	entityName string
}

// CatalogServiceConfig holds dependencies for CatalogService.
type CatalogServiceConfig[T entity.Validatable] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCatalogService creates a service for the given entity type.
func NewCatalogService[T entity.Validatable](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txm:        cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// EntityName returns the name used in errors and audit records.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

// Hooks returns the hook registry for registering lifecycle hooks.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Repo exposes the underlying repository for read paths that do not
// need service-level behavior.
func (s *CatalogService[T]) Repo() CatalogRepository[T] {
	return s.repo
}

// Create validates and persists a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return err
	}

	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.hooks.RunBeforeCreate(ctx, ent); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, ent); err != nil {
			return err
		}
		return s.hooks.RunAfterCreate(ctx, ent)
	})
}

// GetByID retrieves an entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	return s.repo.GetByID(ctx, entityID)
}

// GetByCode retrieves an entity by code.
func (s *CatalogService[T]) GetByCode(ctx context.Context, code string) (T, error) {
	var zero T
	if code == "" {
		return zero, apperror.NewValidation("code is required")
	}
	return s.repo.GetByCode(ctx, code)
}

// Update validates and persists changes to an existing entity.
func (s *CatalogService[T]) Update(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return err
	}

	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.hooks.RunBeforeUpdate(ctx, ent); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, ent); err != nil {
			return err
		}
		return s.hooks.RunAfterUpdate(ctx, ent)
	})
}

// Delete marks an entity as deleted (soft delete).
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		ent, err := s.repo.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if err := s.hooks.RunBeforeDelete(ctx, ent); err != nil {
			return err
		}
		if err := s.repo.SetDeletionMark(ctx, entityID, true); err != nil {
			return err
		}
		return s.hooks.RunAfterDelete(ctx, ent)
	})
}

// Restore clears the deletion mark.
func (s *CatalogService[T]) Restore(ctx context.Context, entityID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, entityID, false)
	})
}

// List retrieves entities with filtering and pagination.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListFilter().Limit
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

// Exists checks whether an entity with the given ID exists.
func (s *CatalogService[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return s.repo.Exists(ctx, entityID)
}
