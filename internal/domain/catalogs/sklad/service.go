package sklad

import (
	"context"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain"
)

// Service provides business logic for the stock catalog.
type Service struct {
	*domain.CatalogService[*Item]
	repo Repository
	txm  tx.Manager
}

// NewService creates a new stock service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "sklad",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txm:            txm,
	}

	base.Hooks().OnBeforeCreate(svc.checkArticleUnique)
	base.Hooks().OnBeforeUpdate(svc.checkArticleUnique)

	return svc
}

// checkArticleUnique rejects a second item with the same normalized
// article number. Normalization happened in Validate before hooks run.
func (s *Service) checkArticleUnique(ctx context.Context, item *Item) error {
	existing, err := s.repo.FindByArticleNumber(ctx, item.ArticleNumber)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != item.ID {
		return apperror.NewDuplicate("sklad", "article number", item.ArticleNumber)
	}
	return nil
}

// FindByArticleNumber retrieves an item by article number, applying
// the same normalization as writes so lookups are case-insensitive.
func (s *Service) FindByArticleNumber(ctx context.Context, articleNumber string) (*Item, error) {
	return s.repo.FindByArticleNumber(ctx, NormalizeArticleNumber(articleNumber))
}

// AdjustQuantity changes the on-hand quantity by delta (receipt or
// consumption) under a row lock.
func (s *Service) AdjustQuantity(ctx context.Context, articleNumber string, delta types.Money) (*Item, error) {
	var item *Item
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		found, err := s.repo.FindByArticleNumber(ctx, NormalizeArticleNumber(articleNumber))
		if err != nil {
			return err
		}
		locked, err := s.repo.GetForUpdate(ctx, found.ID)
		if err != nil {
			return err
		}

		newQty := locked.Quantity.Add(delta)
		if newQty.IsNegative() {
			return apperror.NewValidation("insufficient stock quantity").
				WithDetail("articleNumber", locked.ArticleNumber).
				WithDetail("available", locked.Quantity.String()).
				WithDetail("requested", delta.Neg().String())
		}

		locked.Quantity = newQty
		if err := s.repo.Update(ctx, locked); err != nil {
			return err
		}
		item = locked
		return nil
	})
	return item, err
}
