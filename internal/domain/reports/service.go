package reports

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/period"
	"esteticar/pkg/logger"
)

// Repository fetches the flat collections the engine reduces. Date-bound
// fetches use an inclusive window on the record's business date.
type Repository interface {
	SalesBetween(ctx context.Context, from, to time.Time) ([]*sale.Sale, error)
	ServiceOrdersBetween(ctx context.Context, from, to time.Time) ([]*serviceorder.ServiceOrder, error)
	Customers(ctx context.Context) ([]*customer.Customer, error)
	Products(ctx context.Context) ([]*product.Product, error)
	AccountsBetween(ctx context.Context, from, to time.Time) ([]*accounts.Account, error)
	MovementsBetween(ctx context.Context, from, to time.Time) ([]*cashbook.Movement, error)
}

// Service orchestrates report generation. Fetch failures degrade to an
// empty collection with a logged warning; a report with partial data is
// preferred over no report.
type Service struct {
	repo Repository

	// now is replaceable in tests
	now func() time.Time
}

// NewService creates the report service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Request names the window: a granularity plus an optional explicit
// range. When the range is absent the granularity's default lookback
// applies.
type Request struct {
	Granularity string
	From        *time.Time
	To          *time.Time
}

// resolve parses the granularity and materializes the window.
func (s *Service) resolve(req Request) (period.Granularity, period.Range, error) {
	g, err := period.Parse(req.Granularity)
	if err != nil {
		return "", period.Range{}, err
	}

	if req.From != nil && req.To != nil {
		if req.To.Before(*req.From) {
			return "", period.Range{}, apperror.NewValidation("to must not precede from").
				WithDetail("from", req.From).
				WithDetail("to", req.To)
		}
		return g, period.Range{
			From: period.StartOfDay(req.From.UTC()),
			To:   period.EndOfDay(req.To.UTC()),
		}, nil
	}

	return g, period.DefaultRange(g, s.now().UTC()), nil
}

// Sales builds the sales summary for the requested window.
func (s *Service) Sales(ctx context.Context, req Request) (SalesSummary, error) {
	g, r, err := s.resolve(req)
	if err != nil {
		return SalesSummary{}, err
	}
	sales := s.fetchSales(ctx, r)
	return SummarizeSales(sales, g, r), nil
}

// Services builds the service-order summary for the requested window.
func (s *Service) Services(ctx context.Context, req Request) (ServiceSummary, error) {
	g, r, err := s.resolve(req)
	if err != nil {
		return ServiceSummary{}, err
	}
	orders := s.fetchOrders(ctx, r)
	return SummarizeServices(orders, g, r), nil
}

// Customers builds the customer summary for the requested window.
// Delinquency is judged by due date alone, so documents are fetched back
// past the window start; the engine applies the window to the
// new-customer and revenue metrics itself.
func (s *Service) Customers(ctx context.Context, req Request) (CustomerSummary, error) {
	_, r, err := s.resolve(req)
	if err != nil {
		return CustomerSummary{}, err
	}
	all := period.Range{To: r.To}
	customers := s.fetchCustomers(ctx)
	sales := s.fetchSales(ctx, all)
	orders := s.fetchOrders(ctx, all)
	return SummarizeCustomers(customers, sales, orders, r, s.now().UTC()), nil
}

// Stock builds the stock summary. Stock has no date dimension.
func (s *Service) Stock(ctx context.Context) (StockSummary, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return StockSummary{}, err
	}
	return SummarizeStock(products), nil
}

// Financial builds the financial summary for the requested window.
func (s *Service) Financial(ctx context.Context, req Request) (FinancialSummary, error) {
	_, r, err := s.resolve(req)
	if err != nil {
		return FinancialSummary{}, err
	}
	accts := s.fetchAccounts(ctx, r)
	movements := s.fetchMovements(ctx, r)
	return SummarizeFinancial(accts, movements, r, s.now().UTC()), nil
}

// CashFlow builds just the daily cash-flow section.
func (s *Service) CashFlow(ctx context.Context, req Request) ([]DayFlow, error) {
	_, r, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	movements := s.fetchMovements(ctx, r)
	inWindow := movements[:0:0]
	for _, m := range movements {
		if r.Contains(m.Date) {
			inWindow = append(inWindow, m)
		}
	}
	return BuildDailyFlow(inWindow), nil
}

// General composes the full overview report. Sales and orders are
// fetched without a lower bound: trends need the prior window and the
// delinquency list needs pending documents of any age.
func (s *Service) General(ctx context.Context, req Request) (GeneralReport, error) {
	g, r, err := s.resolve(req)
	if err != nil {
		return GeneralReport{}, err
	}

	fetchWindow := period.Range{To: r.To}

	src := Source{
		Sales:     s.fetchSales(ctx, fetchWindow),
		Orders:    s.fetchOrders(ctx, fetchWindow),
		Customers: s.fetchCustomers(ctx),
		Products:  s.fetchProducts(ctx),
		Accounts:  s.fetchAccounts(ctx, r),
		Movements: s.fetchMovements(ctx, r),
	}

	return Compose(src, g, r, s.now().UTC()), nil
}

// Export validates the request and names the artifact; rendering remains
// an explicit stub.
func (s *Service) Export(ctx context.Context, format ExportFormat, cfg ExportConfig) (Artifact, error) {
	return NewArtifact(format, cfg, s.now().UTC())
}

// --- tolerant fetch helpers ---

func (s *Service) fetchSales(ctx context.Context, r period.Range) []*sale.Sale {
	out, err := s.repo.SalesBetween(ctx, r.From, r.To)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "sales", "error", err)
		return nil
	}
	return out
}

func (s *Service) fetchOrders(ctx context.Context, r period.Range) []*serviceorder.ServiceOrder {
	out, err := s.repo.ServiceOrdersBetween(ctx, r.From, r.To)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "service_orders", "error", err)
		return nil
	}
	return out
}

func (s *Service) fetchCustomers(ctx context.Context) []*customer.Customer {
	out, err := s.repo.Customers(ctx)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "customers", "error", err)
		return nil
	}
	return out
}

func (s *Service) fetchProducts(ctx context.Context) []*product.Product {
	out, err := s.repo.Products(ctx)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "products", "error", err)
		return nil
	}
	return out
}

func (s *Service) fetchAccounts(ctx context.Context, r period.Range) []*accounts.Account {
	out, err := s.repo.AccountsBetween(ctx, r.From, r.To)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "accounts", "error", err)
		return nil
	}
	return out
}

func (s *Service) fetchMovements(ctx context.Context, r period.Range) []*cashbook.Movement {
	out, err := s.repo.MovementsBetween(ctx, r.From, r.To)
	if err != nil {
		logger.Warn(ctx, "report fetch failed, using empty collection", "collection", "cash_movements", "error", err)
		return nil
	}
	return out
}
