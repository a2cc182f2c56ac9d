package document_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/hr"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const daysOffTable = "doc_days_off"

// DaysOffRepo implements hr.Repository.
type DaysOffRepo struct {
	*BaseDocumentRepo[*hr.DaysOff]
}

// NewDaysOffRepo creates a new days-off repository.
func NewDaysOffRepo(txm *postgres.TxManager) *DaysOffRepo {
	return &DaysOffRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*hr.DaysOff](
			txm,
			daysOffTable,
			postgres.ExtractDBColumns[hr.DaysOff](),
			func() *hr.DaysOff { return &hr.DaysOff{} },
		),
	}
}

var _ hr.Repository = (*DaysOffRepo)(nil)

// List retrieves days-off records with employee, type and period filtering.
func (r *DaysOffRepo) List(ctx context.Context, filter hr.ListFilter) (domain.ListResult[*hr.DaysOff], error) {
	var conds []squirrel.Sqlizer

	if filter.EmployeeID != nil {
		conds = append(conds, squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.Type != nil {
		conds = append(conds, squirrel.Eq{"type": *filter.Type})
	}
	if filter.Approved != nil {
		conds = append(conds, squirrel.Eq{"approved": *filter.Approved})
	}
	// Period filter matches records overlapping the window.
	if filter.From != nil {
		conds = append(conds, squirrel.GtOrEq{"end_date": *filter.From})
	}
	if filter.To != nil {
		conds = append(conds, squirrel.LtOrEq{"start_date": *filter.To})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "-start_date"
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}

// ListVacationsForYear returns approved vacation records of the employee
// starting in the given calendar year.
func (r *DaysOffRepo) ListVacationsForYear(ctx context.Context, employeeID id.ID, year int) ([]*hr.DaysOff, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	q := r.baseSelect().
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"type": hr.LeaveVacation}).
		Where(squirrel.Eq{"approved": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.GtOrEq{"start_date": yearStart}).
		Where(squirrel.Lt{"start_date": yearEnd}).
		OrderBy("start_date ASC")

	return r.FindMany(ctx, q)
}
