package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/domain/catalogs/sklad"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const skladTable = "cat_sklad_items"

// SkladRepo implements sklad.Repository.
type SkladRepo struct {
	*BaseCatalogRepo[*sklad.Item]
}

// NewSkladRepo creates a new stock item repository.
func NewSkladRepo(txm *postgres.TxManager) *SkladRepo {
	return &SkladRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*sklad.Item](
			txm,
			skladTable,
			postgres.ExtractDBColumns[sklad.Item](),
			func() *sklad.Item { return &sklad.Item{} },
		),
	}
}

var _ sklad.Repository = (*SkladRepo)(nil)

// FindByArticleNumber retrieves an item by article number. Lookups are
// case-insensitive since article numbers are stored uppercased.
func (r *SkladRepo) FindByArticleNumber(ctx context.Context, articleNumber string) (*sklad.Item, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"article_number": sklad.NormalizeArticleNumber(articleNumber)}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	item, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sklad item", articleNumber)
		}
		return nil, err
	}
	return item, nil
}
