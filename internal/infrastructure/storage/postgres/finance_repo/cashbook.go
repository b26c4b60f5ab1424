package finance_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/infrastructure/storage/postgres"
	"esteticar/internal/infrastructure/storage/postgres/document_repo"
)

const movementTable = "fin_cash_movements"

var movementCols = postgres.ExtractDBColumns[cashbook.Movement]()

// CashbookRepo implements cashbook.Repository.
type CashbookRepo struct {
	*document_repo.BaseDocumentRepo[*cashbook.Movement]
}

// NewCashbookRepo creates a new cashbook repository.
func NewCashbookRepo(txManager *postgres.TxManager) *CashbookRepo {
	return &CashbookRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*cashbook.Movement](
			txManager,
			movementTable,
			movementCols,
			func() *cashbook.Movement { return &cashbook.Movement{} },
		),
	}
}

var _ cashbook.Repository = (*CashbookRepo)(nil)

// ListBetween returns non-deleted movements dated inside [from, to],
// oldest first.
func (r *CashbookRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*cashbook.Movement, error) {
	q := r.Builder().
		Select(movementCols...).
		From(movementTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC")

	return r.FindMany(ctx, q)
}
