package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"due yesterday", day(2026, 3, 9), true},
		{"due today is not overdue", day(2026, 3, 10), false},
		{"due today late in the day", time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC), false},
		{"due tomorrow", day(2026, 3, 11), false},
		{"due last month", day(2026, 2, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(KindPayable, "aluguel", types.MustMoney("1500.00"), tt.due)
			assert.Equal(t, tt.want, a.IsOverdue(today))
		})
	}

	t.Run("paid account is never overdue", func(t *testing.T) {
		a := New(KindPayable, "aluguel", types.MustMoney("1500.00"), day(2026, 1, 1))
		require.NoError(t, a.Pay(today))
		assert.False(t, a.IsOverdue(today))
	})

	t.Run("cancelled account is never overdue", func(t *testing.T) {
		a := New(KindReceivable, "mensalidade", types.MustMoney("300.00"), day(2026, 1, 1))
		require.NoError(t, a.Cancel())
		assert.False(t, a.IsOverdue(today))
	})
}

func TestDaysOverdue(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	a := New(KindReceivable, "parcela", types.MustMoney("100.00"), day(2026, 3, 5))
	assert.Equal(t, 5, a.DaysOverdue(today))

	b := New(KindReceivable, "parcela", types.MustMoney("100.00"), day(2026, 3, 10))
	assert.Equal(t, 0, b.DaysOverdue(today))

	c := New(KindReceivable, "parcela", types.MustMoney("100.00"), day(2026, 3, 12))
	assert.Equal(t, 0, c.DaysOverdue(today))
}

func TestPay(t *testing.T) {
	a := New(KindPayable, "fornecedor", types.MustMoney("800.00"), day(2026, 4, 1))

	when := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, a.Pay(when))
	assert.Equal(t, payment.StatusPaid, a.Status)
	require.NotNil(t, a.PaymentDate)
	assert.Equal(t, when, *a.PaymentDate)

	err := a.Pay(when)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidStateTransition(err))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		a := New(KindPayable, "energia", types.MustMoney("420.00"), day(2026, 4, 5))
		assert.NoError(t, a.Validate(ctx))
	})

	t.Run("zero amount", func(t *testing.T) {
		a := New(KindPayable, "energia", types.Zero(), day(2026, 4, 5))
		assert.Error(t, a.Validate(ctx))
	})

	t.Run("missing description", func(t *testing.T) {
		a := New(KindPayable, "", types.MustMoney("10.00"), day(2026, 4, 5))
		assert.Error(t, a.Validate(ctx))
	})

	t.Run("bad kind", func(t *testing.T) {
		a := New(Kind("loan"), "x", types.MustMoney("10.00"), day(2026, 4, 5))
		assert.Error(t, a.Validate(ctx))
	})

	t.Run("paid requires payment date", func(t *testing.T) {
		a := New(KindPayable, "energia", types.MustMoney("10.00"), day(2026, 4, 5))
		a.Status = payment.StatusPaid
		assert.Error(t, a.Validate(ctx))
	})
}
