package sklad

import (
	"context"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

// Repository defines the interface for stock item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// FindByArticleNumber retrieves an item by normalized article number.
	FindByArticleNumber(ctx context.Context, articleNumber string) (*Item, error)

	// GetForUpdate retrieves an item with row lock (for quantity updates).
	GetForUpdate(ctx context.Context, id id.ID) (*Item, error)
}
