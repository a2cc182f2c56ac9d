package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const (
	orderTable          = "doc_orders"
	orderItemsTable     = "doc_order_items"
	orderEmployeesTable = "doc_order_employees"
)

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[*order.Order]

	itemCols []string
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txm *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*order.Order](
			txm,
			orderTable,
			postgres.ExtractDBColumns[order.Order](),
			func() *order.Order { return &order.Order{} },
		),
		itemCols: postgres.ExtractDBColumns[order.Item](),
	}
}

var _ order.Repository = (*OrderRepo)(nil)

// List retrieves orders with status, customer and date filtering.
func (r *OrderRepo) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	var conds []squirrel.Sqlizer

	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"status": *filter.Status})
	}
	if filter.CustomerID != nil {
		conds = append(conds, squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"client_name": pattern},
			squirrel.ILike{"car_info": pattern},
		})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "-date"
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}

// Lock takes a FOR UPDATE row lock on the order for the rest of the
// current transaction. Conversion serializes on this lock so two
// concurrent conversions of the same order cannot both pass the
// existing-invoice check.
func (r *OrderRepo) Lock(ctx context.Context, orderID id.ID) error {
	q := r.Builder().
		Select("id").
		From(orderTable).
		Where(squirrel.Eq{"id": orderID}).
		Suffix("FOR UPDATE")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var locked id.ID
	if err := pgxscan.Get(ctx, r.Querier(ctx), &locked, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return apperror.NewNotFound(orderTable, orderID.String())
		}
		return fmt.Errorf("lock order: %w", err)
	}

	return nil
}

// SaveItems replaces the order's table part.
func (r *OrderRepo) SaveItems(ctx context.Context, orderID id.ID, items []order.Item) error {
	del := r.Builder().
		Delete(orderItemsTable).
		Where(squirrel.Eq{"order_id": orderID})

	sql, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("build delete items: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	cols := append([]string{"order_id"}, r.itemCols...)
	ins := r.Builder().
		Insert(orderItemsTable).
		Columns(cols...)

	for _, item := range items {
		data := postgres.StructToMap(&item)
		row := make([]any, 0, len(cols))
		row = append(row, orderID)
		for _, col := range r.itemCols {
			row = append(row, data[col])
		}
		ins = ins.Values(row...)
	}

	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	return nil
}

// GetItems loads the table part ordered by line number.
func (r *OrderRepo) GetItems(ctx context.Context, orderID id.ID) ([]order.Item, error) {
	q := r.Builder().
		Select(r.itemCols...).
		From(orderItemsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("line_no ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []order.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	return items, nil
}

// SaveEmployees replaces the mechanic assignments.
func (r *OrderRepo) SaveEmployees(ctx context.Context, orderID id.ID, employeeIDs []id.ID) error {
	del := r.Builder().
		Delete(orderEmployeesTable).
		Where(squirrel.Eq{"order_id": orderID})

	sql, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("build delete employees: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete employees: %w", err)
	}

	if len(employeeIDs) == 0 {
		return nil
	}

	ins := r.Builder().
		Insert(orderEmployeesTable).
		Columns("order_id", "employee_id")
	for _, employeeID := range employeeIDs {
		ins = ins.Values(orderID, employeeID)
	}

	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert employees: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert employees: %w", err)
	}

	return nil
}

// GetEmployees loads the assigned mechanic IDs.
func (r *OrderRepo) GetEmployees(ctx context.Context, orderID id.ID) ([]id.ID, error) {
	q := r.Builder().
		Select("employee_id").
		From(orderEmployeesTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("employee_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}
	defer rows.Close()

	var ids []id.ID
	for rows.Next() {
		var employeeID id.ID
		if err := rows.Scan(&employeeID); err != nil {
			return nil, fmt.Errorf("scan employee id: %w", err)
		}
		ids = append(ids, employeeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	return ids, nil
}
