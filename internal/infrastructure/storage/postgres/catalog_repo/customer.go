package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const (
	customerTable       = "cat_customers"
	customerNumberKey   = "customer_number"
	customerNumberUpsert = `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE
		SET current_val = sys_sequences.current_val + 1
		RETURNING current_val`
)

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*customer.Customer](
			txm,
			customerTable,
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

var _ customer.Repository = (*CustomerRepo)(nil)

// FindByBulstat retrieves a customer by БУЛСТАТ.
func (r *CustomerRepo) FindByBulstat(ctx context.Context, bulstat string) (*customer.Customer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"bulstat": bulstat}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("customer", bulstat)
		}
		return nil, err
	}
	return c, nil
}

// NextNumber returns the next sequential customer number.
func (r *CustomerRepo) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, customerNumberUpsert, customerNumberKey).Scan(&n); err != nil {
		return 0, fmt.Errorf("next customer number: %w", err)
	}
	return n, nil
}
