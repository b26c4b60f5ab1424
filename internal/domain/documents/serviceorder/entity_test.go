package serviceorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

func TestRecomputeTotal(t *testing.T) {
	o := New("Lavagem completa", CategorySimple, types.MustMoney("80.00"))
	assert.True(t, o.TotalPrice.Equal(types.MustMoney("80.00")))

	o.Addons = []Line{
		{AddonID: id.New(), Name: "Cera", AdditionalPrice: types.MustMoney("30.00")},
		{AddonID: id.New(), Name: "Motor", AdditionalPrice: types.MustMoney("25.50")},
	}
	o.RecomputeTotal()
	assert.True(t, o.TotalPrice.Equal(types.MustMoney("135.50")))
}

func TestPayTransitions(t *testing.T) {
	o := New("Polimento", CategoryDetailed, types.MustMoney("200.00"))

	require.NoError(t, o.Pay(payment.MethodPix))
	assert.Equal(t, payment.StatusPaid, o.PaymentStatus)
	assert.Equal(t, payment.MethodPix, o.PaymentMethod)

	// Paying again must fail loudly, not no-op.
	err := o.Pay(payment.MethodPix)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidStateTransition(err))
}

func TestCancelTransitions(t *testing.T) {
	o := New("Polimento", CategoryDetailed, types.MustMoney("200.00"))

	require.NoError(t, o.Cancel())
	assert.Equal(t, payment.StatusCancelled, o.PaymentStatus)

	assert.True(t, apperror.IsInvalidStateTransition(o.Cancel()))
	assert.True(t, apperror.IsInvalidStateTransition(o.Pay(payment.MethodCash)))
}

func TestPayWithInvalidMethod(t *testing.T) {
	o := New("Polimento", CategoryDetailed, types.MustMoney("200.00"))
	err := o.Pay(payment.Method("cheque"))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	// Status unchanged on failure.
	assert.Equal(t, payment.StatusPending, o.PaymentStatus)
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	newOrder := func(due time.Time) *ServiceOrder {
		o := New("Higienização", CategorySimple, types.MustMoney("120.00"))
		o.DueDate = &due
		return o
	}

	t.Run("due yesterday is overdue", func(t *testing.T) {
		o := newOrder(time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC))
		assert.True(t, o.IsOverdue(today))
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		o := newOrder(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
		assert.False(t, o.IsOverdue(today))
	})

	t.Run("paid order is never overdue", func(t *testing.T) {
		o := newOrder(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, o.Pay(payment.MethodCash))
		assert.False(t, o.IsOverdue(today))
	})

	t.Run("no due date", func(t *testing.T) {
		o := New("Higienização", CategorySimple, types.MustMoney("120.00"))
		assert.False(t, o.IsOverdue(today))
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		o := New("Lavagem", CategorySimple, types.MustMoney("50.00"))
		assert.NoError(t, o.Validate(ctx))
	})

	t.Run("unknown category", func(t *testing.T) {
		o := New("Lavagem", Category("premium"), types.MustMoney("50.00"))
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("negative base price", func(t *testing.T) {
		o := New("Lavagem", CategorySimple, types.MustMoney("-1"))
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("empty name", func(t *testing.T) {
		o := New("", CategorySimple, types.MustMoney("50.00"))
		assert.Error(t, o.Validate(ctx))
	})
}
