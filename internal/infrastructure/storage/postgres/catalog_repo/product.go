package catalog_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

var _ product.Repository = (*ProductRepo)(nil)

// AdjustStock atomically changes current_stock by delta. The guard in the
// WHERE clause keeps stock from going negative under concurrent writes.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) (int, error) {
	const adjustSQL = `
		UPDATE cat_products
		SET current_stock = current_stock + $2,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING current_stock`

	var newStock int
	err := r.Querier(ctx).QueryRow(ctx, adjustSQL, productID, delta).Scan(&newStock)
	if err == nil {
		return newStock, nil
	}
	if err != pgx.ErrNoRows {
		return 0, fmt.Errorf("adjust stock: %w", err)
	}

	// No row updated: either the product is missing or the guard fired.
	p, getErr := r.GetByID(ctx, productID)
	if getErr != nil {
		return 0, getErr
	}
	return 0, apperror.NewInsufficientStock(productID.String(), -delta, p.CurrentStock)
}
