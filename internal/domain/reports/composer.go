package reports

import (
	"time"

	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/period"
)

// Source holds the flat collections the composer reduces. Slices may be
// empty when a fetch failed upstream; composition never fails on
// missing data.
type Source struct {
	Sales     []*sale.Sale
	Orders    []*serviceorder.ServiceOrder
	Customers []*customer.Customer
	Products  []*product.Product
	Accounts  []*accounts.Account
	Movements []*cashbook.Movement
}

// Compose builds the general report for the window. Trends compare the
// window against the immediately preceding window of equal length; when
// that prior window holds no records the trend is flagged
// insufficient-history instead of inventing a growth figure.
func Compose(src Source, g period.Granularity, r period.Range, now time.Time) GeneralReport {
	salesSum := SummarizeSales(src.Sales, g, r)
	servicesSum := SummarizeServices(src.Orders, g, r)
	customersSum := SummarizeCustomers(src.Customers, src.Sales, src.Orders, r, now)
	stockSum := SummarizeStock(src.Products)
	financialSum := SummarizeFinancial(src.Accounts, src.Movements, r, now)

	prev := r.Previous()
	prevSales := SummarizeSales(src.Sales, g, prev)

	totalRevenue := salesSum.TotalRevenue.Add(servicesSum.TotalRevenue)
	totalCount := salesSum.TotalSales + servicesSum.TotalOrders

	return GeneralReport{
		Range:       r,
		Granularity: g,
		GeneratedAt: now.UTC(),

		TotalSales:    salesSum.TotalSales,
		TotalOrders:   servicesSum.TotalOrders,
		TotalRevenue:  totalRevenue,
		AverageTicket: types.SafeDiv(totalRevenue, int64(totalCount)),
		NewCustomers:  customersSum.NewCustomers,

		TopProducts:  salesSum.TopProducts,
		TopServices:  servicesSum.TopServices,
		TopCustomers: customersSum.TopCustomers,

		RevenueTrend: buildTrend(salesSum.TotalRevenue, prevSales.TotalRevenue, prevSales.TotalSales),
		SalesTrend: buildTrend(
			types.NewMoney(float64(salesSum.TotalSales)),
			types.NewMoney(float64(prevSales.TotalSales)),
			prevSales.TotalSales,
		),

		Sales:     salesSum,
		Services:  servicesSum,
		Customers: customersSum,
		Stock:     stockSum,
		Financial: financialSum,
	}
}

// buildTrend derives growth only when the prior window actually had
// activity.
func buildTrend(current, previous types.Money, previousCount int) Trend {
	t := Trend{
		Current:       current,
		Previous:      previous,
		GrowthPercent: types.Zero(),
	}
	if previousCount == 0 {
		t.InsufficientHistory = true
		return t
	}
	growth, ok := types.GrowthPercent(current, previous)
	if !ok {
		t.InsufficientHistory = true
		return t
	}
	t.GrowthPercent = growth
	return t
}
