package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/domain/payment"
	"esteticar/internal/domain/period"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func window(from, to time.Time) period.Range {
	return period.Range{From: period.StartOfDay(from), To: period.EndOfDay(to)}
}

func makeSale(date time.Time, total string, method payment.Method) *sale.Sale {
	s := sale.New(id.New())
	s.Date = date
	s.Total = types.MustMoney(total)
	s.Subtotal = s.Total
	s.PaymentMethod = method
	return s
}

func makeProductItem(name string, qty int, total string) sale.Item {
	pid := id.New()
	return sale.Item{
		ID: id.New(), Type: sale.ItemProduct, ProductID: &pid,
		Description: name, Quantity: qty,
		TotalPrice: types.MustMoney(total),
	}
}

func makeOrder(date time.Time, name string, category serviceorder.Category, total string) *serviceorder.ServiceOrder {
	o := serviceorder.New(name, category, types.MustMoney(total))
	o.Date = date
	return o
}

func makeMovement(date time.Time, t cashbook.MovementType, amount string) *cashbook.Movement {
	m := cashbook.New(t, cashbook.CategoryOther, "mov", types.MustMoney(amount))
	m.Date = date
	return m
}

func TestSummarizeSales_Totals(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	sales := []*sale.Sale{
		makeSale(day(2026, 3, 5), "50.00", payment.MethodPix),
		makeSale(day(2026, 3, 8), "70.00", payment.MethodCash),
	}

	sum := SummarizeSales(sales, period.Daily, r)

	assert.Equal(t, 2, sum.TotalSales)
	assert.True(t, sum.TotalRevenue.Equal(types.MustMoney("120.00")))
	assert.True(t, sum.AverageTicket.Equal(types.MustMoney("60.00")))
}

func TestSummarizeSales_EmptyWindow(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	sum := SummarizeSales(nil, period.Daily, r)

	assert.Equal(t, 0, sum.TotalSales)
	assert.True(t, sum.TotalRevenue.IsZero())
	// No division-by-zero: empty window averages to zero.
	assert.True(t, sum.AverageTicket.IsZero())
	assert.Empty(t, sum.ByPeriod)
}

func TestSummarizeSales_ExcludesCancelledAndOutOfWindow(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	cancelled := makeSale(day(2026, 3, 10), "500.00", payment.MethodPix)
	require.NoError(t, cancelled.Cancel())

	sales := []*sale.Sale{
		makeSale(day(2026, 3, 5), "100.00", payment.MethodPix),
		cancelled,
		makeSale(day(2026, 4, 1), "999.00", payment.MethodPix), // outside window
	}

	sum := SummarizeSales(sales, period.Daily, r)
	assert.Equal(t, 1, sum.TotalSales)
	assert.True(t, sum.TotalRevenue.Equal(types.MustMoney("100.00")))
}

func TestSummarizeSales_TopProductsStableRanking(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	s1 := makeSale(day(2026, 3, 5), "0", payment.MethodPix)
	s1.Items = []sale.Item{
		makeProductItem("Cera", 2, "60.00"),
		makeProductItem("Shampoo", 1, "20.00"),
		makeProductItem("Pano", 3, "30.00"),
	}

	sum := SummarizeSales([]*sale.Sale{s1}, period.Daily, r)

	require.Len(t, sum.TopProducts, 3)
	assert.Equal(t, "Pano", sum.TopProducts[0].Name)
	assert.Equal(t, "Cera", sum.TopProducts[1].Name)
	assert.Equal(t, "Shampoo", sum.TopProducts[2].Name)
}

func TestSummarizeSales_TiesKeepInputOrder(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	s1 := makeSale(day(2026, 3, 5), "0", payment.MethodPix)
	s1.Items = []sale.Item{
		makeProductItem("Primeiro", 2, "10.00"),
		makeProductItem("Segundo", 2, "10.00"),
		makeProductItem("Terceiro", 2, "10.00"),
	}

	sum := SummarizeSales([]*sale.Sale{s1}, period.Daily, r)
	require.Len(t, sum.TopProducts, 3)
	assert.Equal(t, "Primeiro", sum.TopProducts[0].Name)
	assert.Equal(t, "Segundo", sum.TopProducts[1].Name)
	assert.Equal(t, "Terceiro", sum.TopProducts[2].Name)
}

func TestSummarizeSales_TopCapsAtTen(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	s1 := makeSale(day(2026, 3, 5), "0", payment.MethodPix)
	for i := 0; i < 15; i++ {
		s1.Items = append(s1.Items, makeProductItem(string(rune('A'+i)), i+1, "1.00"))
	}

	sum := SummarizeSales([]*sale.Sale{s1}, period.Daily, r)
	assert.Len(t, sum.TopProducts, 10)
	// Highest quantity first.
	assert.Equal(t, 15, sum.TopProducts[0].Quantity)
}

func TestSummarizeSales_PaymentMethodBreakdown(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	sales := []*sale.Sale{
		makeSale(day(2026, 3, 5), "100.00", payment.MethodPix),
		makeSale(day(2026, 3, 6), "50.00", payment.MethodPix),
		makeSale(day(2026, 3, 7), "30.00", payment.MethodCash),
	}

	sum := SummarizeSales(sales, period.Daily, r)

	require.Len(t, sum.ByPaymentMethod, 2)
	assert.Equal(t, "pix", sum.ByPaymentMethod[0].Method)
	assert.Equal(t, 2, sum.ByPaymentMethod[0].Count)
	assert.True(t, sum.ByPaymentMethod[0].Revenue.Equal(types.MustMoney("150.00")))
}

func TestSummarizeSales_Additivity(t *testing.T) {
	full := window(day(2026, 3, 1), day(2026, 3, 31))
	firstHalf := window(day(2026, 3, 1), day(2026, 3, 15))
	secondHalf := window(day(2026, 3, 16), day(2026, 3, 31))

	sales := []*sale.Sale{
		makeSale(day(2026, 3, 2), "10.00", payment.MethodPix),
		makeSale(day(2026, 3, 15), "20.00", payment.MethodPix),
		makeSale(day(2026, 3, 16), "30.00", payment.MethodPix),
		makeSale(day(2026, 3, 31), "40.00", payment.MethodPix),
	}

	whole := SummarizeSales(sales, period.Daily, full)
	a := SummarizeSales(sales, period.Daily, firstHalf)
	b := SummarizeSales(sales, period.Daily, secondHalf)

	assert.True(t, whole.TotalRevenue.Equal(a.TotalRevenue.Add(b.TotalRevenue)))
	assert.Equal(t, whole.TotalSales, a.TotalSales+b.TotalSales)
}

func TestSummarizeServices_CategoryBreakdown(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	orders := []*serviceorder.ServiceOrder{
		makeOrder(day(2026, 3, 2), "Lavagem", serviceorder.CategorySimple, "50.00"),
		makeOrder(day(2026, 3, 3), "Lavagem", serviceorder.CategorySimple, "50.00"),
		makeOrder(day(2026, 3, 4), "Polimento", serviceorder.CategoryDetailed, "200.00"),
	}

	sum := SummarizeServices(orders, period.Daily, r)

	assert.Equal(t, 3, sum.TotalOrders)
	assert.True(t, sum.TotalRevenue.Equal(types.MustMoney("300.00")))
	assert.True(t, sum.AveragePrice.Equal(types.MustMoney("100.00")))

	require.Len(t, sum.ByCategory, 2)
	assert.Equal(t, "simple", sum.ByCategory[0].Category)
	assert.Equal(t, 2, sum.ByCategory[0].Count)

	require.NotEmpty(t, sum.TopServices)
	assert.Equal(t, "Lavagem", sum.TopServices[0].Name)
	assert.Equal(t, 2, sum.TopServices[0].Quantity)
}

func TestSummarizeServices_PeriodBreakdown(t *testing.T) {
	r := window(day(2026, 3, 9), day(2026, 3, 11))
	orders := []*serviceorder.ServiceOrder{
		makeOrder(day(2026, 3, 9), "Lavagem", serviceorder.CategorySimple, "50.00"),
		makeOrder(day(2026, 3, 11), "Lavagem", serviceorder.CategorySimple, "70.00"),
	}

	sum := SummarizeServices(orders, period.Daily, r)

	require.Len(t, sum.ByPeriod, 3)
	assert.Equal(t, 1, sum.ByPeriod[0].Count)
	assert.Equal(t, 0, sum.ByPeriod[1].Count)
	assert.Equal(t, 1, sum.ByPeriod[2].Count)
	assert.Equal(t, "09/03/2026", sum.ByPeriod[0].Label)
}

func TestSummarizeCustomers(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	today := day(2026, 3, 31)

	c1 := customer.New("Maria")
	c1.CreatedAt = day(2026, 3, 10)
	c2 := customer.New("José")
	c2.CreatedAt = day(2025, 1, 1)

	s1 := makeSale(day(2026, 3, 5), "100.00", payment.MethodPix)
	s1.CustomerID = c1.ID
	require.NoError(t, s1.Pay(payment.MethodPix))

	// Pending sale dated before today: delinquent.
	s2 := makeSale(day(2026, 3, 10), "80.00", payment.MethodCash)
	s2.CustomerID = c2.ID
	s2.Number = "VND-2026-00002"

	o1 := makeOrder(day(2026, 3, 12), "Polimento", serviceorder.CategoryDetailed, "150.00")
	o1.CustomerID = &c2.ID
	due := day(2026, 3, 20)
	o1.DueDate = &due

	sum := SummarizeCustomers(
		[]*customer.Customer{c1, c2},
		[]*sale.Sale{s1, s2},
		[]*serviceorder.ServiceOrder{o1},
		r, today,
	)

	assert.Equal(t, 2, sum.TotalCustomers)
	assert.Equal(t, 1, sum.NewCustomers)

	require.NotEmpty(t, sum.TopCustomers)
	// José: 80 + 150 = 230 beats Maria's 100.
	assert.Equal(t, "José", sum.TopCustomers[0].Name)
	assert.True(t, sum.TopCustomers[0].Revenue.Equal(types.MustMoney("230.00")))

	require.Len(t, sum.Delinquents, 1)
	d := sum.Delinquents[0]
	assert.Equal(t, "José", d.Name)
	assert.True(t, d.OverdueAmount.Equal(types.MustMoney("230.00")))
	require.Len(t, d.Items, 2)
	assert.Equal(t, "sale", d.Items[0].Type)
	assert.Equal(t, 21, d.Items[0].DaysOverdue)
	assert.Equal(t, "service_order", d.Items[1].Type)
	assert.Equal(t, 11, d.Items[1].DaysOverdue)
}

func TestSummarizeStock(t *testing.T) {
	mk := func(name string, current, min int, cost, sale string) *product.Product {
		p := product.New(name, "geral")
		p.CurrentStock = current
		p.MinStock = min
		p.CostPrice = types.MustMoney(cost)
		p.SalePrice = types.MustMoney(sale)
		return p
	}

	products := []*product.Product{
		mk("Esgotado", 0, 5, "10.00", "20.00"),
		mk("Baixo", 5, 5, "10.00", "20.00"),
		mk("Normal", 8, 5, "10.00", "20.00"),
		mk("Excesso", 11, 5, "10.00", "20.00"),
	}

	sum := SummarizeStock(products)

	assert.Equal(t, 4, sum.TotalProducts)
	require.Len(t, sum.ByStatus, 4)

	byStatus := map[string]StockBucket{}
	for _, b := range sum.ByStatus {
		byStatus[b.Status] = b
	}
	assert.Equal(t, []string{"Esgotado"}, byStatus["out_of_stock"].Products)
	assert.Equal(t, []string{"Baixo"}, byStatus["low"].Products)
	assert.Equal(t, []string{"Normal"}, byStatus["normal"].Products)
	assert.Equal(t, []string{"Excesso"}, byStatus["overstock"].Products)

	// (0+5+8+11) × cost / sale price.
	assert.True(t, sum.InventoryCost.Equal(types.MustMoney("240.00")))
	assert.True(t, sum.InventoryValue.Equal(types.MustMoney("480.00")))
}

func TestSummarizeFinancial(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	today := day(2026, 3, 20)

	overdue := accounts.New(accounts.KindPayable, "aluguel", types.MustMoney("1000.00"), day(2026, 3, 10))
	onTime := accounts.New(accounts.KindPayable, "energia", types.MustMoney("200.00"), day(2026, 3, 25))
	paid := accounts.New(accounts.KindReceivable, "mensalidade", types.MustMoney("300.00"), day(2026, 3, 15))
	require.NoError(t, paid.Pay(day(2026, 3, 14)))

	sum := SummarizeFinancial(
		[]*accounts.Account{overdue, onTime, paid},
		[]*cashbook.Movement{
			makeMovement(day(2026, 3, 5), cashbook.TypeIncome, "500.00"),
			makeMovement(day(2026, 3, 6), cashbook.TypeExpense, "150.00"),
		},
		r, today,
	)

	assert.True(t, sum.Payable.Total.Equal(types.MustMoney("1200.00")))
	assert.True(t, sum.Payable.Overdue.Equal(types.MustMoney("1000.00")))
	assert.Equal(t, 1, sum.Payable.OverdueCount)
	assert.True(t, sum.Receivable.Paid.Equal(types.MustMoney("300.00")))
	assert.True(t, sum.Receivable.Overdue.IsZero())

	assert.True(t, sum.TotalIncome.Equal(types.MustMoney("500.00")))
	assert.True(t, sum.TotalExpense.Equal(types.MustMoney("150.00")))
	assert.True(t, sum.NetBalance.Equal(types.MustMoney("350.00")))
	assert.Len(t, sum.CashFlow, 2)
}

func TestBuildDailyFlow_CarryForward(t *testing.T) {
	movements := []*cashbook.Movement{
		makeMovement(day(2026, 3, 1), cashbook.TypeIncome, "100.00"),
		makeMovement(day(2026, 3, 3), cashbook.TypeExpense, "30.00"),
	}

	flows := BuildDailyFlow(movements)

	require.Len(t, flows, 2)

	assert.True(t, flows[0].Opening.IsZero())
	assert.True(t, flows[0].Income.Equal(types.MustMoney("100.00")))
	assert.True(t, flows[0].Closing.Equal(types.MustMoney("100.00")))

	assert.True(t, flows[1].Opening.Equal(types.MustMoney("100.00")))
	assert.True(t, flows[1].Expense.Equal(types.MustMoney("30.00")))
	assert.True(t, flows[1].Closing.Equal(types.MustMoney("70.00")))
}

func TestBuildDailyFlow_ChronologicalDespiteInputOrder(t *testing.T) {
	movements := []*cashbook.Movement{
		makeMovement(day(2026, 3, 10), cashbook.TypeIncome, "50.00"),
		makeMovement(day(2026, 3, 1), cashbook.TypeIncome, "10.00"),
		makeMovement(day(2026, 3, 5), cashbook.TypeExpense, "5.00"),
	}

	flows := BuildDailyFlow(movements)

	require.Len(t, flows, 3)
	assert.Equal(t, 1, flows[0].Date.Day())
	assert.Equal(t, 5, flows[1].Date.Day())
	assert.Equal(t, 10, flows[2].Date.Day())
	assert.True(t, flows[2].Closing.Equal(types.MustMoney("55.00")))
}
