// Package reports implements the reporting core: the period calculator
// feeds a pure in-memory aggregation engine whose summaries are composed
// into the general report and handed to the export stub.
package reports

import (
	"time"

	"esteticar/internal/core/types"
	"esteticar/internal/domain/period"
)

// TopItem is one row of a top-N ranking.
type TopItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Revenue  types.Money `json:"revenue"`
}

// MethodBreakdown is revenue per payment method.
type MethodBreakdown struct {
	Method  string      `json:"method"`
	Count   int         `json:"count"`
	Revenue types.Money `json:"revenue"`
}

// CategoryBreakdown is count and revenue per category. The list is
// unordered.
type CategoryBreakdown struct {
	Category string      `json:"category"`
	Count    int         `json:"count"`
	Revenue  types.Money `json:"revenue"`
}

// PeriodBucket is one granularity bucket of the report window.
type PeriodBucket struct {
	Label   string      `json:"label"`
	Start   time.Time   `json:"start"`
	End     time.Time   `json:"end"`
	Count   int         `json:"count"`
	Revenue types.Money `json:"revenue"`
}

// SalesSummary aggregates sales inside the window. Cancelled sales are
// excluded from every figure.
type SalesSummary struct {
	Range period.Range `json:"range"`

	TotalSales    int         `json:"totalSales"`
	TotalRevenue  types.Money `json:"totalRevenue"`
	AverageTicket types.Money `json:"averageTicket"`

	ByPaymentMethod []MethodBreakdown `json:"byPaymentMethod"`
	TopProducts     []TopItem         `json:"topProducts"`
	TopServices     []TopItem         `json:"topServices"`
	ByPeriod        []PeriodBucket    `json:"byPeriod"`
}

// ServiceSummary aggregates service orders inside the window.
type ServiceSummary struct {
	Range period.Range `json:"range"`

	TotalOrders  int         `json:"totalOrders"`
	TotalRevenue types.Money `json:"totalRevenue"`
	AveragePrice types.Money `json:"averagePrice"`

	ByCategory  []CategoryBreakdown `json:"byCategory"`
	TopServices []TopItem           `json:"topServices"`
	ByPeriod    []PeriodBucket      `json:"byPeriod"`
}

// OverdueItem is one pending record past its due date.
type OverdueItem struct {
	Type        string      `json:"type"` // "sale" or "service_order"
	Description string      `json:"description"`
	Amount      types.Money `json:"amount"`
	DueDate     time.Time   `json:"dueDate"`
	DaysOverdue int         `json:"daysOverdue"`
}

// DelinquentCustomer is a customer with at least one overdue item.
type DelinquentCustomer struct {
	CustomerID    string        `json:"customerId"`
	Name          string        `json:"name"`
	OverdueAmount types.Money   `json:"overdueAmount"`
	Items         []OverdueItem `json:"items"`
}

// CustomerSummary aggregates customer activity inside the window.
type CustomerSummary struct {
	Range period.Range `json:"range"`

	TotalCustomers int `json:"totalCustomers"`
	NewCustomers   int `json:"newCustomers"`

	TopCustomers []TopItem            `json:"topCustomers"`
	Delinquents  []DelinquentCustomer `json:"delinquents"`
}

// StockBucket is the set of products in one stock status.
type StockBucket struct {
	Status   string      `json:"status"`
	Count    int         `json:"count"`
	Products []string    `json:"products"`
	Value    types.Money `json:"value"`
}

// StockSummary classifies the whole catalog; it is independent of the
// date window.
type StockSummary struct {
	TotalProducts  int         `json:"totalProducts"`
	InventoryCost  types.Money `json:"inventoryCost"`
	InventoryValue types.Money `json:"inventoryValue"`

	ByStatus []StockBucket `json:"byStatus"`
}

// DayFlow is one calendar day of the cash-flow report. Opening carries
// forward from the previous day's closing; the first day opens at zero.
type DayFlow struct {
	Date    time.Time   `json:"date"`
	Opening types.Money `json:"opening"`
	Income  types.Money `json:"income"`
	Expense types.Money `json:"expense"`
	Closing types.Money `json:"closing"`
}

// AccountsTotals summarizes one side of the accounts ledger.
type AccountsTotals struct {
	Total        types.Money `json:"total"`
	Pending      types.Money `json:"pending"`
	Paid         types.Money `json:"paid"`
	Overdue      types.Money `json:"overdue"`
	OverdueCount int         `json:"overdueCount"`
}

// FinancialSummary aggregates accounts and cash movements.
type FinancialSummary struct {
	Range period.Range `json:"range"`

	Payable    AccountsTotals `json:"payable"`
	Receivable AccountsTotals `json:"receivable"`

	TotalIncome  types.Money `json:"totalIncome"`
	TotalExpense types.Money `json:"totalExpense"`
	NetBalance   types.Money `json:"netBalance"`

	CashFlow []DayFlow `json:"cashFlow"`
}

// Trend is a period-over-period comparison. When the prior window holds
// no data, Growth is omitted and InsufficientHistory is set instead of
// fabricating a figure.
type Trend struct {
	Current             types.Money `json:"current"`
	Previous            types.Money `json:"previous"`
	GrowthPercent       types.Money `json:"growthPercent"`
	InsufficientHistory bool        `json:"insufficientHistory"`
}

// GeneralReport is the composed overview handed to the console dashboard.
type GeneralReport struct {
	Range       period.Range       `json:"range"`
	Granularity period.Granularity `json:"granularity"`
	GeneratedAt time.Time          `json:"generatedAt"`

	TotalSales    int         `json:"totalSales"`
	TotalOrders   int         `json:"totalOrders"`
	TotalRevenue  types.Money `json:"totalRevenue"`
	AverageTicket types.Money `json:"averageTicket"`
	NewCustomers  int         `json:"newCustomers"`

	TopProducts  []TopItem `json:"topProducts"`
	TopServices  []TopItem `json:"topServices"`
	TopCustomers []TopItem `json:"topCustomers"`

	RevenueTrend Trend `json:"revenueTrend"`
	SalesTrend   Trend `json:"salesTrend"`

	Sales     SalesSummary     `json:"sales"`
	Services  ServiceSummary   `json:"services"`
	Customers CustomerSummary  `json:"customers"`
	Stock     StockSummary     `json:"stock"`
	Financial FinancialSummary `json:"financial"`
}
