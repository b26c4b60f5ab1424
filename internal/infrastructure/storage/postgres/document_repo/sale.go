package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"esteticar/internal/core/id"
	"esteticar/internal/domain"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/infrastructure/storage/postgres"
)

const (
	saleTable     = "doc_sales"
	saleItemTable = "doc_sale_items"
)

var saleItemCols = postgres.ExtractDBColumns[sale.Item]()

// SaleRepo implements sale.Repository. Sale items live in a child table
// and are written together with the header, inside the caller's
// transaction.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sale.Sale](
			txManager,
			saleTable,
			postgres.ExtractDBColumns[sale.Sale](),
			func() *sale.Sale { return &sale.Sale{} },
		),
	}
}

var _ sale.Repository = (*SaleRepo)(nil)

// Create inserts the sale header and its items.
func (r *SaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	if err := r.BaseDocumentRepo.Create(ctx, s); err != nil {
		return err
	}
	return r.insertItems(ctx, s)
}

// Update rewrites the sale header and replaces its items.
func (r *SaleRepo) Update(ctx context.Context, s *sale.Sale) error {
	if err := r.BaseDocumentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err := r.deleteItems(ctx, s.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, s)
}

// GetByID retrieves a sale with its items.
func (r *SaleRepo) GetByID(ctx context.Context, saleID id.ID) (*sale.Sale, error) {
	s, err := r.BaseDocumentRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []id.ID{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return s, nil
}

// List retrieves sales with their items.
func (r *SaleRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*sale.Sale], error) {
	result, err := r.BaseDocumentRepo.List(ctx, f)
	if err != nil {
		return result, err
	}
	if len(result.Items) == 0 {
		return result, nil
	}

	ids := make([]id.ID, 0, len(result.Items))
	for _, s := range result.Items {
		ids = append(ids, s.ID)
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return result, err
	}
	for _, s := range result.Items {
		s.Items = items[s.ID]
	}
	return result, nil
}

// ListBetween returns non-deleted sales dated inside [from, to].
func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC")

	sales, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]id.ID, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		s.Items = items[s.ID]
	}
	return sales, nil
}

func (r *SaleRepo) insertItems(ctx context.Context, s *sale.Sale) error {
	if len(s.Items) == 0 {
		return nil
	}

	q := r.Builder().Insert(saleItemTable).Columns(saleItemCols...)
	for i := range s.Items {
		item := &s.Items[i]
		data := postgres.StructToMap(item)
		row := make([]any, len(saleItemCols))
		for ci, col := range saleItemCols {
			row[ci] = data[col]
		}
		q = q.Values(row...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale items: %w", err)
	}
	return nil
}

func (r *SaleRepo) deleteItems(ctx context.Context, saleID id.ID) error {
	q := r.Builder().
		Delete(saleItemTable).
		Where(squirrel.Eq{"sale_id": saleID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete items: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

func (r *SaleRepo) loadItems(ctx context.Context, saleIDs []id.ID) (map[id.ID][]sale.Item, error) {
	q := r.Builder().
		Select(saleItemCols...).
		From(saleItemTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load items: %w", err)
	}

	var rows []sale.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("load sale items: %w", err)
	}

	grouped := make(map[id.ID][]sale.Item, len(saleIDs))
	for _, item := range rows {
		grouped[item.SaleID] = append(grouped[item.SaleID], item)
	}
	return grouped, nil
}
