package imports

import (
	"context"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// ListFilter filters import log lists.
type ListFilter struct {
	domain.ListFilter

	Provider *string
}

// Repository defines the interface for ImportLog persistence.
type Repository interface {
	Create(ctx context.Context, l *ImportLog) error
	GetByID(ctx context.Context, id id.ID) (*ImportLog, error)
	GetByIdentifier(ctx context.Context, identifier string) (*ImportLog, error)
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*ImportLog], error)
}
