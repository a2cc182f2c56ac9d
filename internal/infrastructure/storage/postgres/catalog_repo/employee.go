package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain/catalogs/employee"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const employeeTable = "cat_employees"

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txm *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*employee.Employee](
			txm,
			employeeTable,
			postgres.ExtractDBColumns[employee.Employee](),
			func() *employee.Employee { return &employee.Employee{} },
		),
	}
}

var _ employee.Repository = (*EmployeeRepo)(nil)

// SetLeaveUsed stores the recomputed current-year leave cache.
// Does not bump the version: the cache is derived data, not a user edit.
func (r *EmployeeRepo) SetLeaveUsed(ctx context.Context, entityID id.ID, days int) error {
	q := r.Builder().
		Update(employeeTable).
		Set("current_year_leave_used", days).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set leave used: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("set leave used: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("employee", entityID.String())
	}

	return nil
}
