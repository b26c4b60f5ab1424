// Package finance_repo provides PostgreSQL implementations for financial repositories.
package finance_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"esteticar/internal/core/id"
	"esteticar/internal/domain"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/infrastructure/storage/postgres"
	"esteticar/internal/infrastructure/storage/postgres/document_repo"
)

const accountTable = "fin_accounts"

var accountCols = postgres.ExtractDBColumns[accounts.Account]()

// AccountRepo implements accounts.Repository. Payables and receivables
// share one table discriminated by the kind column.
type AccountRepo struct {
	*document_repo.BaseDocumentRepo[*accounts.Account]
}

// NewAccountRepo creates a new account repository.
func NewAccountRepo(txManager *postgres.TxManager) *AccountRepo {
	return &AccountRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*accounts.Account](
			txManager,
			accountTable,
			accountCols,
			func() *accounts.Account { return &accounts.Account{} },
		),
	}
}

var _ accounts.Repository = (*AccountRepo)(nil)

func (r *AccountRepo) accountSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(accountCols...).
		From(accountTable)
}

// List retrieves accounts of one kind with standard filtering.
func (r *AccountRepo) List(ctx context.Context, kind accounts.Kind, f domain.ListFilter) (domain.ListResult[*accounts.Account], error) {
	result := domain.ListResult[*accounts.Account]{
		Limit:  f.Limit,
		Offset: f.Offset,
	}

	q := r.accountSelect().
		Where(squirrel.Eq{"kind": kind})

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	if len(f.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": f.IDs})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("due_date ASC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return result, err
	}
	result.Items = items
	return result, nil
}

// ListDueBetween returns non-deleted accounts with due date inside [from, to].
func (r *AccountRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]*accounts.Account, error) {
	q := r.accountSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.GtOrEq{"due_date": from}).
		Where(squirrel.LtOrEq{"due_date": to}).
		OrderBy("due_date ASC")

	return r.FindMany(ctx, q)
}

// ListOverdue returns unpaid accounts of one kind due before the given day.
func (r *AccountRepo) ListOverdue(ctx context.Context, kind accounts.Kind, before time.Time) ([]*accounts.Account, error) {
	q := r.accountSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"kind": kind}).
		Where(squirrel.Eq{"status": "pending"}).
		Where(squirrel.Lt{"due_date": before}).
		OrderBy("due_date ASC")

	return r.FindMany(ctx, q)
}

// GetForCustomer returns unpaid receivables of a customer.
func (r *AccountRepo) GetForCustomer(ctx context.Context, customerID id.ID) ([]*accounts.Account, error) {
	q := r.accountSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"status": "pending"}).
		OrderBy("due_date ASC")

	return r.FindMany(ctx, q)
}
