package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/documents/invoice"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const invoiceTable = "doc_invoices"

// InvoiceRepo implements invoice.Repository. Invoices are immutable
// snapshots: the interface exposes no Update or Delete.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*invoice.Invoice](
			txm,
			invoiceTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
	}
}

var _ invoice.Repository = (*InvoiceRepo)(nil)

// GetByOrderID retrieves the invoice issued for an order.
func (r *InvoiceRepo) GetByOrderID(ctx context.Context, orderID id.ID) (*invoice.Invoice, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"order_id": orderID}).
		Limit(1)

	inv, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("invoice", "order "+orderID.String())
		}
		return nil, err
	}
	return inv, nil
}

// ExistsByNumber checks whether an invoice with the number exists.
func (r *InvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(invoiceTable).
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by number: %w", err)
	}

	return true, nil
}

// List retrieves invoices with date filtering, newest first.
func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	var conds []squirrel.Sqlizer

	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"invoice_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"invoice_date": *filter.DateTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"client_name": pattern},
		})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "-invoice_date"
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}
