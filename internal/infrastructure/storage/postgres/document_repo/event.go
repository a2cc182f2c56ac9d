package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/domain"
	"avtoservice/internal/domain/events"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const eventTable = "doc_events"

// EventRepo implements events.Repository.
type EventRepo struct {
	*BaseDocumentRepo[*events.Event]
}

// NewEventRepo creates a new calendar event repository.
func NewEventRepo(txm *postgres.TxManager) *EventRepo {
	return &EventRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*events.Event](
			txm,
			eventTable,
			postgres.ExtractDBColumns[events.Event](),
			func() *events.Event { return &events.Event{} },
		),
	}
}

var _ events.Repository = (*EventRepo)(nil)

// List retrieves events; From/To select events overlapping the window.
func (r *EventRepo) List(ctx context.Context, filter events.ListFilter) (domain.ListResult[*events.Event], error) {
	var conds []squirrel.Sqlizer

	if filter.From != nil {
		conds = append(conds, squirrel.Gt{"end_time": *filter.From})
	}
	if filter.To != nil {
		conds = append(conds, squirrel.Lt{"start_time": *filter.To})
	}
	if filter.Type != nil {
		conds = append(conds, squirrel.Eq{"type": *filter.Type})
	}
	if filter.EmployeeID != nil {
		conds = append(conds, squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.CustomerID != nil {
		conds = append(conds, squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Completed != nil {
		conds = append(conds, squirrel.Eq{"completed": *filter.Completed})
	}
	if filter.Search != "" {
		conds = append(conds, squirrel.ILike{"title": "%" + filter.Search + "%"})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "start_time"
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}
