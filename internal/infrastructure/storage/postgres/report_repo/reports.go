// Package report_repo aggregates the data the reporting engine consumes.
package report_repo

import (
	"context"
	"time"

	"esteticar/internal/domain"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/reports"
	"esteticar/internal/infrastructure/storage/postgres"
	"esteticar/internal/infrastructure/storage/postgres/catalog_repo"
	"esteticar/internal/infrastructure/storage/postgres/document_repo"
	"esteticar/internal/infrastructure/storage/postgres/finance_repo"
)

// catalogPageSize bounds the registry fetches used by reports.
const catalogPageSize = 10000

// ReportRepo implements reports.Repository on top of the storage repos.
type ReportRepo struct {
	sales     *document_repo.SaleRepo
	orders    *document_repo.ServiceOrderRepo
	customers *catalog_repo.CustomerRepo
	products  *catalog_repo.ProductRepo
	accounts  *finance_repo.AccountRepo
	cashbook  *finance_repo.CashbookRepo
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		sales:     document_repo.NewSaleRepo(txManager),
		orders:    document_repo.NewServiceOrderRepo(txManager),
		customers: catalog_repo.NewCustomerRepo(txManager),
		products:  catalog_repo.NewProductRepo(txManager),
		accounts:  finance_repo.NewAccountRepo(txManager),
		cashbook:  finance_repo.NewCashbookRepo(txManager),
	}
}

var _ reports.Repository = (*ReportRepo)(nil)

// SalesBetween returns sales dated inside [from, to].
func (r *ReportRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	return r.sales.ListBetween(ctx, from, to)
}

// ServiceOrdersBetween returns service orders dated inside [from, to].
func (r *ReportRepo) ServiceOrdersBetween(ctx context.Context, from, to time.Time) ([]*serviceorder.ServiceOrder, error) {
	return r.orders.ListBetween(ctx, from, to)
}

// Customers returns the full non-deleted customer registry.
func (r *ReportRepo) Customers(ctx context.Context) ([]*customer.Customer, error) {
	result, err := r.customers.List(ctx, domain.ListFilter{Limit: catalogPageSize, OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// Products returns the full non-deleted product registry.
func (r *ReportRepo) Products(ctx context.Context) ([]*product.Product, error) {
	result, err := r.products.List(ctx, domain.ListFilter{Limit: catalogPageSize, OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// AccountsBetween returns accounts with due date inside [from, to].
func (r *ReportRepo) AccountsBetween(ctx context.Context, from, to time.Time) ([]*accounts.Account, error) {
	return r.accounts.ListDueBetween(ctx, from, to)
}

// MovementsBetween returns cash movements dated inside [from, to].
func (r *ReportRepo) MovementsBetween(ctx context.Context, from, to time.Time) ([]*cashbook.Movement, error) {
	return r.cashbook.ListBetween(ctx, from, to)
}
