package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/types"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/payment"
	"esteticar/internal/domain/period"
)

func TestCompose_TrendsAgainstPriorWindow(t *testing.T) {
	// Current window: March. Prior window of equal length reaches back
	// into February.
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	now := day(2026, 3, 31)

	src := Source{
		Sales: []*sale.Sale{
			makeSale(day(2026, 3, 10), "300.00", payment.MethodPix),
			makeSale(day(2026, 2, 10), "200.00", payment.MethodPix),
			makeSale(day(2026, 2, 20), "100.00", payment.MethodCash),
		},
	}

	report := Compose(src, period.Daily, r, now)

	assert.Equal(t, 1, report.TotalSales)
	assert.True(t, report.TotalRevenue.Equal(types.MustMoney("300.00")))

	require.False(t, report.RevenueTrend.InsufficientHistory)
	assert.True(t, report.RevenueTrend.Current.Equal(types.MustMoney("300.00")))
	assert.True(t, report.RevenueTrend.Previous.Equal(types.MustMoney("300.00")))
	// Same revenue both windows: zero growth, computed, not omitted.
	assert.True(t, report.RevenueTrend.GrowthPercent.IsZero())

	require.False(t, report.SalesTrend.InsufficientHistory)
	// 1 sale now vs 2 before: -50%.
	assert.True(t, report.SalesTrend.GrowthPercent.Equal(types.MustMoney("-50")))
}

func TestCompose_InsufficientHistory(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	now := day(2026, 3, 31)

	src := Source{
		Sales: []*sale.Sale{
			makeSale(day(2026, 3, 10), "300.00", payment.MethodPix),
		},
	}

	report := Compose(src, period.Daily, r, now)

	assert.True(t, report.RevenueTrend.InsufficientHistory)
	assert.True(t, report.RevenueTrend.GrowthPercent.IsZero())
	assert.True(t, report.SalesTrend.InsufficientHistory)
}

func TestCompose_CombinedAverageTicket(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	src := Source{
		Sales: []*sale.Sale{
			makeSale(day(2026, 3, 5), "100.00", payment.MethodPix),
		},
		Orders: []*serviceorder.ServiceOrder{
			makeOrder(day(2026, 3, 6), "Polimento", serviceorder.CategoryDetailed, "200.00"),
		},
	}

	report := Compose(src, period.Daily, r, day(2026, 3, 31))

	assert.Equal(t, 1, report.TotalSales)
	assert.Equal(t, 1, report.TotalOrders)
	assert.True(t, report.TotalRevenue.Equal(types.MustMoney("300.00")))
	assert.True(t, report.AverageTicket.Equal(types.MustMoney("150.00")))
}

func TestCompose_EmptySourceProducesEmptyReport(t *testing.T) {
	r := window(day(2026, 3, 1), day(2026, 3, 31))
	report := Compose(Source{}, period.Weekly, r, day(2026, 3, 31))

	assert.Equal(t, 0, report.TotalSales)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.AverageTicket.IsZero())
	assert.True(t, report.RevenueTrend.InsufficientHistory)
	assert.Empty(t, report.TopProducts)
	assert.Equal(t, period.Weekly, report.Granularity)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestComposeGeneratedAtIsUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 3, 31, 10, 0, 0, 0, loc)
	r := window(day(2026, 3, 1), day(2026, 3, 31))

	report := Compose(Source{}, period.Daily, r, now)
	assert.Equal(t, time.UTC, report.GeneratedAt.Location())
}
