package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"esteticar/internal/core/apperror"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/infrastructure/storage/postgres"
)

const customerTable = "cat_customers"

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txManager *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*customer.Customer](
			txManager,
			customerTable,
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

var _ customer.Repository = (*CustomerRepo)(nil)

// GetByDocument retrieves customer by normalized CPF/CNPJ.
func (r *CustomerRepo) GetByDocument(ctx context.Context, document string) (*customer.Customer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"document": document}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("customer", document)
		}
		return nil, err
	}
	return c, nil
}
