package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

func productItem(qty int, unit, discount string) Item {
	pid := id.New()
	item := Item{
		ID:        id.New(),
		Type:      ItemProduct,
		ProductID: &pid,
		Quantity:  qty,
		UnitPrice: types.MustMoney(unit),
		Discount:  types.MustMoney(discount),
	}
	return item
}

func TestItemRecompute(t *testing.T) {
	item := productItem(3, "10.00", "5.00")
	item.Recompute()
	assert.True(t, item.TotalPrice.Equal(types.MustMoney("25.00")))
}

func TestRecomputeTotals(t *testing.T) {
	s := New(id.New())
	s.Items = []Item{
		productItem(2, "25.00", "0"),
		productItem(1, "70.00", "0"),
	}
	s.Discount = types.MustMoney("10.00")
	s.RecomputeTotals()

	assert.True(t, s.Subtotal.Equal(types.MustMoney("120.00")))
	assert.True(t, s.Total.Equal(types.MustMoney("110.00")))
}

func TestCheckDeclaredTotals(t *testing.T) {
	s := New(id.New())
	s.Items = []Item{productItem(1, "100.00", "0")}
	s.RecomputeTotals()

	assert.NoError(t, s.CheckDeclaredTotals(types.MustMoney("100.00"), types.MustMoney("100.00")))

	err := s.CheckDeclaredTotals(types.MustMoney("99.00"), types.MustMoney("100.00"))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	err = s.CheckDeclaredTotals(types.MustMoney("100.00"), types.MustMoney("90.00"))
	assert.Error(t, err)
}

func TestPayAndCancelTransitions(t *testing.T) {
	s := New(id.New())

	require.NoError(t, s.Pay(payment.MethodCredit))
	assert.Equal(t, payment.StatusPaid, s.PaymentStatus)

	assert.True(t, apperror.IsInvalidStateTransition(s.Pay(payment.MethodCredit)))
	assert.True(t, apperror.IsInvalidStateTransition(s.Cancel()))

	s2 := New(id.New())
	require.NoError(t, s2.Cancel())
	assert.True(t, apperror.IsInvalidStateTransition(s2.Pay(payment.MethodCash)))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	valid := func() *Sale {
		s := New(id.New())
		s.PaymentMethod = payment.MethodPix
		s.Items = []Item{productItem(1, "50.00", "0")}
		s.RecomputeTotals()
		return s
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate(ctx))
	})

	t.Run("no items", func(t *testing.T) {
		s := valid()
		s.Items = nil
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("nil customer", func(t *testing.T) {
		s := valid()
		s.CustomerID = id.Nil()
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("product item without productId", func(t *testing.T) {
		s := valid()
		s.Items[0].ProductID = nil
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("service item without serviceId", func(t *testing.T) {
		s := valid()
		s.Items[0].Type = ItemService
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("zero quantity", func(t *testing.T) {
		s := valid()
		s.Items[0].Quantity = 0
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("negative discount", func(t *testing.T) {
		s := valid()
		s.Discount = types.MustMoney("-1")
		assert.Error(t, s.Validate(ctx))
	})
}
