package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain/catalogs/car"
	"avtoservice/internal/infrastructure/storage/postgres"
)

const carTable = "cat_cars"

// CarRepo implements car.Repository.
type CarRepo struct {
	*BaseCatalogRepo[*car.Car]
}

// NewCarRepo creates a new car repository.
func NewCarRepo(txm *postgres.TxManager) *CarRepo {
	return &CarRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*car.Car](
			txm,
			carTable,
			postgres.ExtractDBColumns[car.Car](),
			func() *car.Car { return &car.Car{} },
		),
	}
}

var _ car.Repository = (*CarRepo)(nil)

// ListByCustomer retrieves all cars of a customer, active first.
func (r *CarRepo) ListByCustomer(ctx context.Context, customerID id.ID) ([]*car.Car, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("is_active DESC", "name ASC")

	return r.FindMany(ctx, q)
}

// FindByVIN retrieves a car of the given customer by VIN.
func (r *CarRepo) FindByVIN(ctx context.Context, customerID id.ID, vin string) (*car.Car, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"vin": vin}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("car", vin)
		}
		return nil, err
	}
	return c, nil
}
