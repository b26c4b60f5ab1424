package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"esteticar/internal/core/id"
	"esteticar/internal/domain"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/infrastructure/storage/postgres"
)

const (
	serviceOrderTable     = "doc_service_orders"
	serviceOrderLineTable = "doc_service_order_lines"
)

var serviceOrderLineCols = postgres.ExtractDBColumns[serviceorder.Line]()

// ServiceOrderRepo implements serviceorder.Repository. Addon lines live
// in a child table written together with the header.
type ServiceOrderRepo struct {
	*BaseDocumentRepo[*serviceorder.ServiceOrder]
}

// NewServiceOrderRepo creates a new service order repository.
func NewServiceOrderRepo(txManager *postgres.TxManager) *ServiceOrderRepo {
	return &ServiceOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*serviceorder.ServiceOrder](
			txManager,
			serviceOrderTable,
			postgres.ExtractDBColumns[serviceorder.ServiceOrder](),
			func() *serviceorder.ServiceOrder { return &serviceorder.ServiceOrder{} },
		),
	}
}

var _ serviceorder.Repository = (*ServiceOrderRepo)(nil)

// Create inserts the order header and its addon lines.
func (r *ServiceOrderRepo) Create(ctx context.Context, order *serviceorder.ServiceOrder) error {
	if err := r.BaseDocumentRepo.Create(ctx, order); err != nil {
		return err
	}
	return r.insertLines(ctx, order)
}

// Update rewrites the order header and replaces its addon lines.
func (r *ServiceOrderRepo) Update(ctx context.Context, order *serviceorder.ServiceOrder) error {
	if err := r.BaseDocumentRepo.Update(ctx, order); err != nil {
		return err
	}

	if err := r.deleteLines(ctx, order.ID); err != nil {
		return err
	}
	return r.insertLines(ctx, order)
}

// GetByID retrieves an order with its addon lines.
func (r *ServiceOrderRepo) GetByID(ctx context.Context, orderID id.ID) (*serviceorder.ServiceOrder, error) {
	order, err := r.BaseDocumentRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx, []id.ID{order.ID})
	if err != nil {
		return nil, err
	}
	order.Addons = lines[order.ID]
	return order, nil
}

// List retrieves orders with their addon lines.
func (r *ServiceOrderRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*serviceorder.ServiceOrder], error) {
	result, err := r.BaseDocumentRepo.List(ctx, f)
	if err != nil {
		return result, err
	}
	if len(result.Items) == 0 {
		return result, nil
	}

	ids := make([]id.ID, 0, len(result.Items))
	for _, order := range result.Items {
		ids = append(ids, order.ID)
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return result, err
	}
	for _, order := range result.Items {
		order.Addons = lines[order.ID]
	}
	return result, nil
}

// ListBetween returns non-deleted orders dated inside [from, to].
func (r *ServiceOrderRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*serviceorder.ServiceOrder, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC")

	orders, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]id.ID, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		order.Addons = lines[order.ID]
	}
	return orders, nil
}

func (r *ServiceOrderRepo) insertLines(ctx context.Context, order *serviceorder.ServiceOrder) error {
	if len(order.Addons) == 0 {
		return nil
	}

	q := r.Builder().Insert(serviceOrderLineTable).Columns(serviceOrderLineCols...)
	for i := range order.Addons {
		line := &order.Addons[i]
		data := postgres.StructToMap(line)
		row := make([]any, len(serviceOrderLineCols))
		for ci, col := range serviceOrderLineCols {
			row[ci] = data[col]
		}
		q = q.Values(row...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert order lines: %w", err)
	}
	return nil
}

func (r *ServiceOrderRepo) deleteLines(ctx context.Context, orderID id.ID) error {
	q := r.Builder().
		Delete(serviceOrderLineTable).
		Where(squirrel.Eq{"service_order_id": orderID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return nil
}

func (r *ServiceOrderRepo) loadLines(ctx context.Context, orderIDs []id.ID) (map[id.ID][]serviceorder.Line, error) {
	q := r.Builder().
		Select(serviceOrderLineCols...).
		From(serviceOrderLineTable).
		Where(squirrel.Eq{"service_order_id": orderIDs}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load lines: %w", err)
	}

	var rows []serviceorder.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	grouped := make(map[id.ID][]serviceorder.Line, len(orderIDs))
	for _, line := range rows {
		grouped[line.ServiceOrderID] = append(grouped[line.ServiceOrderID], line)
	}
	return grouped, nil
}
