package reports

import (
	"sort"
	"time"

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

// topN caps every ranking in the report.
const topN = 10

// accumulator keeps insertion order so ranking ties resolve by input
// order (sort is stable over the first-seen sequence).
type accumulator struct {
	order []string
	items map[string]*TopItem
}

func newAccumulator() *accumulator {
	return &accumulator{items: make(map[string]*TopItem)}
}

func (a *accumulator) add(name string, quantity int, revenue types.Money) {
	item, ok := a.items[name]
	if !ok {
		item = &TopItem{Name: name, Revenue: types.Zero()}
		a.items[name] = item
		a.order = append(a.order, name)
	}
	item.Quantity += quantity
	item.Revenue = item.Revenue.Add(revenue)
}

// topByQuantity returns up to topN items, quantity descending, ties by
// input order.
func (a *accumulator) topByQuantity() []TopItem {
	return a.top(func(x, y *TopItem) bool { return x.Quantity > y.Quantity })
}

// topByRevenue returns up to topN items, revenue descending, ties by
// input order.
func (a *accumulator) topByRevenue() []TopItem {
	return a.top(func(x, y *TopItem) bool { return x.Revenue.GreaterThan(y.Revenue) })
}

func (a *accumulator) top(less func(x, y *TopItem) bool) []TopItem {
	out := make([]TopItem, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.items[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// SummarizeSales reduces the sales inside the window in a single pass.
// Cancelled and soft-deleted sales never count.
func SummarizeSales(sales []*sale.Sale, g period.Granularity, r period.Range) SalesSummary {
	s := SalesSummary{
		Range:         r,
		TotalRevenue:  types.Zero(),
		AverageTicket: types.Zero(),
	}

	methods := make(map[payment.Method]*MethodBreakdown)
	var methodOrder []payment.Method
	products := newAccumulator()
	services := newAccumulator()

	var counted []*sale.Sale
	for _, sl := range sales {
		if sl == nil || sl.DeletionMark || sl.PaymentStatus == payment.StatusCancelled {
			continue
		}
		if !r.Contains(sl.Date) {
			continue
		}
		counted = append(counted, sl)

		s.TotalSales++
		s.TotalRevenue = s.TotalRevenue.Add(sl.Total)

		mb, ok := methods[sl.PaymentMethod]
		if !ok {
			mb = &MethodBreakdown{Method: string(sl.PaymentMethod), Revenue: types.Zero()}
			methods[sl.PaymentMethod] = mb
			methodOrder = append(methodOrder, sl.PaymentMethod)
		}
		mb.Count++
		mb.Revenue = mb.Revenue.Add(sl.Total)

		for _, item := range sl.Items {
			switch item.Type {
			case sale.ItemProduct:
				products.add(item.Description, item.Quantity, item.TotalPrice)
			case sale.ItemService:
				services.add(item.Description, item.Quantity, item.TotalPrice)
			}
		}
	}

	s.AverageTicket = types.SafeDiv(s.TotalRevenue, int64(s.TotalSales))

	for _, m := range methodOrder {
		s.ByPaymentMethod = append(s.ByPaymentMethod, *methods[m])
	}
	s.TopProducts = products.topByQuantity()
	s.TopServices = services.topByQuantity()

	s.ByPeriod = bucketize(g, r, len(counted), func(b period.Range) (int, types.Money) {
		count, revenue := 0, types.Zero()
		for _, sl := range counted {
			if b.Contains(sl.Date) {
				count++
				revenue = revenue.Add(sl.Total)
			}
		}
		return count, revenue
	})

	return s
}

// SummarizeServices reduces the service orders inside the window.
func SummarizeServices(orders []*serviceorder.ServiceOrder, g period.Granularity, r period.Range) ServiceSummary {
	s := ServiceSummary{
		Range:        r,
		TotalRevenue: types.Zero(),
		AveragePrice: types.Zero(),
	}

	categories := make(map[serviceorder.Category]*CategoryBreakdown)
	var categoryOrder []serviceorder.Category
	top := newAccumulator()

	var counted []*serviceorder.ServiceOrder
	for _, o := range orders {
		if o == nil || o.DeletionMark || o.PaymentStatus == payment.StatusCancelled {
			continue
		}
		if !r.Contains(o.Date) {
			continue
		}
		counted = append(counted, o)

		s.TotalOrders++
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalPrice)

		cb, ok := categories[o.Category]
		if !ok {
			cb = &CategoryBreakdown{Category: string(o.Category), Revenue: types.Zero()}
			categories[o.Category] = cb
			categoryOrder = append(categoryOrder, o.Category)
		}
		cb.Count++
		cb.Revenue = cb.Revenue.Add(o.TotalPrice)

		top.add(o.Name, 1, o.TotalPrice)
	}

	s.AveragePrice = types.SafeDiv(s.TotalRevenue, int64(s.TotalOrders))

	for _, c := range categoryOrder {
		s.ByCategory = append(s.ByCategory, *categories[c])
	}
	s.TopServices = top.topByQuantity()

	s.ByPeriod = bucketize(g, r, len(counted), func(b period.Range) (int, types.Money) {
		count, revenue := 0, types.Zero()
		for _, o := range counted {
			if b.Contains(o.Date) {
				count++
				revenue = revenue.Add(o.TotalPrice)
			}
		}
		return count, revenue
	})

	return s
}

// SummarizeCustomers reduces customer activity: new registrations in the
// window, a revenue ranking and the delinquency list.
func SummarizeCustomers(
	customers []*customer.Customer,
	sales []*sale.Sale,
	orders []*serviceorder.ServiceOrder,
	r period.Range,
	today time.Time,
) CustomerSummary {
	s := CustomerSummary{Range: r}

	names := make(map[string]string, len(customers))
	for _, c := range customers {
		if c == nil || c.DeletionMark {
			continue
		}
		s.TotalCustomers++
		names[c.ID.String()] = c.Name
		if r.Contains(c.CreatedAt) {
			s.NewCustomers++
		}
	}

	resolve := func(customerID string) string {
		if name, ok := names[customerID]; ok {
			return name
		}
		return customerID
	}

	top := newAccumulator()
	overdueByCustomer := make(map[string]*DelinquentCustomer)
	var overdueOrder []string

	addOverdue := func(customerID string, item OverdueItem) {
		d, ok := overdueByCustomer[customerID]
		if !ok {
			d = &DelinquentCustomer{
				CustomerID:    customerID,
				Name:          resolve(customerID),
				OverdueAmount: types.Zero(),
			}
			overdueByCustomer[customerID] = d
			overdueOrder = append(overdueOrder, customerID)
		}
		d.OverdueAmount = d.OverdueAmount.Add(item.Amount)
		d.Items = append(d.Items, item)
	}

	for _, sl := range sales {
		if sl == nil || sl.DeletionMark || sl.PaymentStatus == payment.StatusCancelled {
			continue
		}
		cid := sl.CustomerID.String()
		if r.Contains(sl.Date) {
			top.add(resolve(cid), 1, sl.Total)
		}
		if sl.IsOverdue(today) {
			addOverdue(cid, OverdueItem{
				Type:        "sale",
				Description: sl.Number,
				Amount:      sl.Total,
				DueDate:     sl.Date,
				DaysOverdue: calendarDaysBetween(sl.Date, today),
			})
		}
	}

	for _, o := range orders {
		if o == nil || o.DeletionMark || o.PaymentStatus == payment.StatusCancelled || o.CustomerID == nil {
			continue
		}
		cid := o.CustomerID.String()
		if r.Contains(o.Date) {
			top.add(resolve(cid), 1, o.TotalPrice)
		}
		if o.IsOverdue(today) {
			addOverdue(cid, OverdueItem{
				Type:        "service_order",
				Description: o.Name,
				Amount:      o.TotalPrice,
				DueDate:     *o.DueDate,
				DaysOverdue: calendarDaysBetween(*o.DueDate, today),
			})
		}
	}

	s.TopCustomers = top.topByRevenue()

	for _, cid := range overdueOrder {
		s.Delinquents = append(s.Delinquents, *overdueByCustomer[cid])
	}
	sort.SliceStable(s.Delinquents, func(i, j int) bool {
		return s.Delinquents[i].OverdueAmount.GreaterThan(s.Delinquents[j].OverdueAmount)
	})

	return s
}

// SummarizeStock classifies the product catalog. Stock has no date
// dimension, so the report window does not apply.
func SummarizeStock(products []*product.Product) StockSummary {
	s := StockSummary{
		InventoryCost:  types.Zero(),
		InventoryValue: types.Zero(),
	}

	buckets := map[product.StockStatus]*StockBucket{}
	statusOrder := []product.StockStatus{
		product.StockOutOfStock, product.StockLow, product.StockNormal, product.StockOverstock,
	}
	for _, st := range statusOrder {
		buckets[st] = &StockBucket{Status: string(st), Value: types.Zero()}
	}

	for _, p := range products {
		if p == nil || p.DeletionMark {
			continue
		}
		s.TotalProducts++
		s.InventoryCost = s.InventoryCost.Add(p.InventoryCost())
		s.InventoryValue = s.InventoryValue.Add(p.InventoryValue())

		b := buckets[p.StockStatus()]
		b.Count++
		b.Products = append(b.Products, p.Name)
		b.Value = b.Value.Add(p.InventoryValue())
	}

	for _, st := range statusOrder {
		s.ByStatus = append(s.ByStatus, *buckets[st])
	}
	return s
}

// SummarizeFinancial reduces accounts due in the window and cash
// movements dated in it. Overdue classification always compares against
// today, not the window edges.
func SummarizeFinancial(
	accts []*accounts.Account,
	movements []*cashbook.Movement,
	r period.Range,
	today time.Time,
) FinancialSummary {
	s := FinancialSummary{
		Range:        r,
		Payable:      newAccountsTotals(),
		Receivable:   newAccountsTotals(),
		TotalIncome:  types.Zero(),
		TotalExpense: types.Zero(),
		NetBalance:   types.Zero(),
	}

	for _, a := range accts {
		if a == nil || a.DeletionMark || a.Status == payment.StatusCancelled {
			continue
		}
		if !r.Contains(a.DueDate) {
			continue
		}

		totals := &s.Receivable
		if a.Kind == accounts.KindPayable {
			totals = &s.Payable
		}

		totals.Total = totals.Total.Add(a.Amount)
		switch a.Status {
		case payment.StatusPaid:
			totals.Paid = totals.Paid.Add(a.Amount)
		case payment.StatusPending:
			totals.Pending = totals.Pending.Add(a.Amount)
			if a.IsOverdue(today) {
				totals.Overdue = totals.Overdue.Add(a.Amount)
				totals.OverdueCount++
			}
		}
	}

	var inWindow []*cashbook.Movement
	for _, m := range movements {
		if m == nil || m.DeletionMark || !r.Contains(m.Date) {
			continue
		}
		inWindow = append(inWindow, m)
		if m.Type == cashbook.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(m.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(m.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpense)
	s.CashFlow = BuildDailyFlow(inWindow)

	return s
}

// BuildDailyFlow partitions movements by calendar day in chronological
// order. Each day's opening balance is the previous day's closing; the
// first day opens at zero.
func BuildDailyFlow(movements []*cashbook.Movement) []DayFlow {
	type dayTotals struct {
		income  types.Money
		expense types.Money
	}

	days := make(map[time.Time]*dayTotals)
	var order []time.Time
	for _, m := range movements {
		if m == nil || m.DeletionMark {
			continue
		}
		day := time.Date(m.Date.Year(), m.Date.Month(), m.Date.Day(), 0, 0, 0, 0, time.UTC)
		t, ok := days[day]
		if !ok {
			t = &dayTotals{income: types.Zero(), expense: types.Zero()}
			days[day] = t
			order = append(order, day)
		}
		if m.Type == cashbook.TypeIncome {
			t.income = t.income.Add(m.Amount)
		} else {
			t.expense = t.expense.Add(m.Amount)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	flows := make([]DayFlow, 0, len(order))
	balance := types.Zero()
	for _, day := range order {
		t := days[day]
		flow := DayFlow{
			Date:    day,
			Opening: balance,
			Income:  t.income,
			Expense: t.expense,
		}
		flow.Closing = flow.Opening.Add(t.income).Sub(t.expense)
		balance = flow.Closing
		flows = append(flows, flow)
	}
	return flows
}

func newAccountsTotals() AccountsTotals {
	return AccountsTotals{
		Total:   types.Zero(),
		Pending: types.Zero(),
		Paid:    types.Zero(),
		Overdue: types.Zero(),
	}
}

// bucketize splits the window into granularity buckets and reduces each
// one. Empty windows produce no buckets.
func bucketize(g period.Granularity, r period.Range, recordCount int, reduce func(period.Range) (int, types.Money)) []PeriodBucket {
	if recordCount == 0 {
		return nil
	}

	var out []PeriodBucket
	for _, b := range period.Buckets(g, r) {
		count, revenue := reduce(b)
		out = append(out, PeriodBucket{
			Label:   g.Label(b.From),
			Start:   b.From,
			End:     b.To,
			Count:   count,
			Revenue: revenue,
		})
	}
	return out
}

func calendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(f).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
