package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/addon"
	"esteticar/internal/infrastructure/storage/postgres"
)

const addonTable = "cat_addons"

// AddonRepo implements addon.Repository.
type AddonRepo struct {
	*BaseCatalogRepo[*addon.Addon]
}

// NewAddonRepo creates a new addon repository.
func NewAddonRepo(txManager *postgres.TxManager) *AddonRepo {
	return &AddonRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*addon.Addon](
			txManager,
			addonTable,
			postgres.ExtractDBColumns[addon.Addon](),
			func() *addon.Addon { return &addon.Addon{} },
		),
	}
}

var _ addon.Repository = (*AddonRepo)(nil)

// GetMany resolves a batch of addon IDs in one query.
func (r *AddonRepo) GetMany(ctx context.Context, ids []id.ID) ([]*addon.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"deletion_mark": false})

	return r.FindMany(ctx, q)
}
