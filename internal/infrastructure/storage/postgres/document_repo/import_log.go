package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/imports"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const importLogTable = "doc_import_logs"

// ImportLogRepo implements imports.Repository. Logs are insert-only.
type ImportLogRepo struct {
	*BaseDocumentRepo[*imports.ImportLog]
}

// NewImportLogRepo creates a new import log repository.
func NewImportLogRepo(txm *postgres.TxManager) *ImportLogRepo {
	return &ImportLogRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*imports.ImportLog](
			txm,
			importLogTable,
			postgres.ExtractDBColumns[imports.ImportLog](),
			func() *imports.ImportLog { return &imports.ImportLog{} },
		),
	}
}

var _ imports.Repository = (*ImportLogRepo)(nil)

// GetByIdentifier retrieves the log of a prior import with the same
// derived identifier, used for duplicate detection.
func (r *ImportLogRepo) GetByIdentifier(ctx context.Context, identifier string) (*imports.ImportLog, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"import_identifier": identifier}).
		OrderBy("import_date DESC").
		Limit(1)

	l, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("import log", identifier)
		}
		return nil, err
	}
	return l, nil
}

// List retrieves import logs, newest first.
func (r *ImportLogRepo) List(ctx context.Context, filter imports.ListFilter) (domain.ListResult[*imports.ImportLog], error) {
	var conds []squirrel.Sqlizer

	if filter.Provider != nil {
		conds = append(conds, squirrel.Eq{"provider": *filter.Provider})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"file_name": pattern},
			squirrel.ILike{"import_identifier": pattern},
		})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "-import_date"
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}
