package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"esteticar/internal/core/types"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name    string
		current int
		min     int
		want    StockStatus
	}{
		{"zero stock", 0, 5, StockOutOfStock},
		{"zero stock with zero min", 0, 0, StockOutOfStock},
		{"below min", 3, 5, StockLow},
		{"exactly at min", 5, 5, StockLow},
		{"between min and double", 8, 5, StockNormal},
		{"exactly at double min", 10, 5, StockNormal},
		{"above double min", 11, 5, StockOverstock},
		{"one unit no min", 1, 0, StockOverstock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.current, tt.min))
		})
	}
}

func TestInventoryValuation(t *testing.T) {
	p := New("Cera Carnaúba", "ceras")
	p.CostPrice = types.MustMoney("25.50")
	p.SalePrice = types.MustMoney("49.90")
	p.CurrentStock = 4

	assert.True(t, p.InventoryCost().Equal(types.MustMoney("102.00")))
	assert.True(t, p.InventoryValue().Equal(types.MustMoney("199.60")))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		p := New("Shampoo Automotivo", "limpeza")
		p.SalePrice = types.MustMoney("19.90")
		assert.NoError(t, p.Validate(ctx))
	})

	t.Run("negative stock", func(t *testing.T) {
		p := New("Shampoo Automotivo", "limpeza")
		p.CurrentStock = -1
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("negative price", func(t *testing.T) {
		p := New("Shampoo Automotivo", "limpeza")
		p.SalePrice = types.MustMoney("-0.01")
		assert.Error(t, p.Validate(ctx))
	})
}
