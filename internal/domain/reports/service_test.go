package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/payment"
)

type stubRepo struct {
	sales     []*sale.Sale
	orders    []*serviceorder.ServiceOrder
	customers []*customer.Customer
	products  []*product.Product
	accounts  []*accounts.Account
	movements []*cashbook.Movement

	salesErr error
}

// inWindow mirrors the repository contract: only records dated inside
// [from, to] come back.
func inWindow[T any](items []T, date func(T) time.Time, from, to time.Time) []T {
	var out []T
	for _, item := range items {
		d := date(item)
		if !d.Before(from) && !d.After(to) {
			out = append(out, item)
		}
	}
	return out
}

func (r *stubRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	if r.salesErr != nil {
		return nil, r.salesErr
	}
	return inWindow(r.sales, func(s *sale.Sale) time.Time { return s.Date }, from, to), nil
}

func (r *stubRepo) ServiceOrdersBetween(ctx context.Context, from, to time.Time) ([]*serviceorder.ServiceOrder, error) {
	return inWindow(r.orders, func(o *serviceorder.ServiceOrder) time.Time { return o.Date }, from, to), nil
}

func (r *stubRepo) Customers(ctx context.Context) ([]*customer.Customer, error) {
	return r.customers, nil
}

func (r *stubRepo) Products(ctx context.Context) ([]*product.Product, error) {
	return r.products, nil
}

func (r *stubRepo) AccountsBetween(ctx context.Context, from, to time.Time) ([]*accounts.Account, error) {
	return r.accounts, nil
}

func (r *stubRepo) MovementsBetween(ctx context.Context, from, to time.Time) ([]*cashbook.Movement, error) {
	return r.movements, nil
}

func newTestService(repo *stubRepo, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestService_InvalidGranularity(t *testing.T) {
	svc := newTestService(&stubRepo{}, day(2026, 3, 31))

	_, err := svc.Sales(context.Background(), Request{Granularity: "hourly"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidGranularity, appErr.Code)
}

func TestService_DefaultLookback(t *testing.T) {
	now := day(2026, 3, 31)
	repo := &stubRepo{
		sales: []*sale.Sale{
			makeSale(day(2026, 3, 30), "100.00", payment.MethodPix),
			// Outside the 7-day daily lookback.
			makeSale(day(2026, 3, 1), "999.00", payment.MethodPix),
		},
	}
	svc := newTestService(repo, now)

	sum, err := svc.Sales(context.Background(), Request{Granularity: "daily"})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalSales)
	assert.True(t, sum.TotalRevenue.Equal(types.MustMoney("100.00")))
}

func TestService_ExplicitRange(t *testing.T) {
	now := day(2026, 3, 31)
	repo := &stubRepo{
		sales: []*sale.Sale{
			makeSale(day(2026, 3, 5), "50.00", payment.MethodPix),
		},
	}
	svc := newTestService(repo, now)

	from := day(2026, 3, 1)
	to := day(2026, 3, 10)
	sum, err := svc.Sales(context.Background(), Request{Granularity: "daily", From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalSales)
}

func TestService_RangeValidation(t *testing.T) {
	svc := newTestService(&stubRepo{}, day(2026, 3, 31))

	from := day(2026, 3, 10)
	to := day(2026, 3, 1)
	_, err := svc.Sales(context.Background(), Request{Granularity: "daily", From: &from, To: &to})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_GeneralTolerantOfFetchFailure(t *testing.T) {
	now := day(2026, 3, 31)
	repo := &stubRepo{
		salesErr: errors.New("connection refused"),
		orders: []*serviceorder.ServiceOrder{
			makeOrder(day(2026, 3, 10), "Lavagem", serviceorder.CategorySimple, "60.00"),
		},
	}
	svc := newTestService(repo, now)

	report, err := svc.General(context.Background(), Request{Granularity: "monthly"})
	require.NoError(t, err)

	// Sales failed and degraded to empty; services still reported.
	assert.Equal(t, 0, report.TotalSales)
	assert.Equal(t, 1, report.TotalOrders)
	assert.True(t, report.TotalRevenue.Equal(types.MustMoney("60.00")))
}

func TestService_CustomersDelinquencyOutlivesWindow(t *testing.T) {
	now := day(2026, 3, 31)
	c := customer.New("Maria Silva")

	// Pending sale from well before the monthly report window.
	old := makeSale(day(2025, 6, 1), "150.00", payment.MethodBoleto)
	old.CustomerID = c.ID

	repo := &stubRepo{
		customers: []*customer.Customer{c},
		sales:     []*sale.Sale{old},
	}
	svc := newTestService(repo, now)

	sum, err := svc.Customers(context.Background(), Request{Granularity: "monthly"})
	require.NoError(t, err)

	require.Len(t, sum.Delinquents, 1)
	assert.Equal(t, "Maria Silva", sum.Delinquents[0].Name)
	assert.True(t, sum.Delinquents[0].OverdueAmount.Equal(types.MustMoney("150.00")))

	// The stale sale must not leak into the window-bound revenue ranking.
	assert.Empty(t, sum.TopCustomers)
}

func TestService_GeneralIncludesStaleDelinquents(t *testing.T) {
	now := day(2026, 3, 31)
	c := customer.New("Maria Silva")

	old := makeSale(day(2025, 6, 1), "150.00", payment.MethodBoleto)
	old.CustomerID = c.ID

	repo := &stubRepo{
		customers: []*customer.Customer{c},
		sales:     []*sale.Sale{old},
	}
	svc := newTestService(repo, now)

	report, err := svc.General(context.Background(), Request{Granularity: "monthly"})
	require.NoError(t, err)

	require.Len(t, report.Customers.Delinquents, 1)
	// Revenue totals stay window-bound.
	assert.Equal(t, 0, report.TotalSales)
}

func TestService_Export(t *testing.T) {
	svc := newTestService(&stubRepo{}, time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	a, err := svc.Export(context.Background(), FormatCSV, ExportConfig{})
	require.NoError(t, err)
	assert.Equal(t, "relatorio_2026-08-29.csv", a.Filename)

	_, err = svc.Export(context.Background(), "png", ExportConfig{})
	assert.Error(t, err)
}
