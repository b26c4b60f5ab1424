// Package product implements the product registry and stock rules.
package product

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
)

// StockStatus classifies current stock against the minimum level.
// It is always derived, never persisted.
type StockStatus string

const (
	StockOutOfStock StockStatus = "out_of_stock"
	StockLow        StockStatus = "low"
	StockNormal     StockStatus = "normal"
	StockOverstock  StockStatus = "overstock"
)

// OverstockFactor is the multiplier over minStock above which a product
// counts as overstocked.
const OverstockFactor = 2

// Product is a registry entity with stock tracking.
type Product struct {
	entity.Catalog

	Category     string      `db:"category" json:"category"`
	SKU          string      `db:"sku" json:"sku,omitempty"`
	CostPrice    types.Money `db:"cost_price" json:"costPrice"`
	SalePrice    types.Money `db:"sale_price" json:"salePrice"`
	CurrentStock int         `db:"current_stock" json:"currentStock"`
	MinStock     int         `db:"min_stock" json:"minStock"`
	SupplierID   *id.ID      `db:"supplier_id" json:"supplierId,omitempty"`
}

// New creates an active product.
func New(name, category string) *Product {
	return &Product{
		Catalog:  entity.NewCatalog("", name),
		Category: category,
	}
}

// ClassifyStock derives the stock status from current and minimum levels.
// Zero stock always wins; a product exactly at its minimum counts as low.
func ClassifyStock(current, min int) StockStatus {
	switch {
	case current == 0:
		return StockOutOfStock
	case current <= min:
		return StockLow
	case current > min*OverstockFactor:
		return StockOverstock
	default:
		return StockNormal
	}
}

// StockStatus returns the derived classification for this product.
func (p *Product) StockStatus() StockStatus {
	return ClassifyStock(p.CurrentStock, p.MinStock)
}

// InventoryCost returns currentStock × costPrice.
func (p *Product) InventoryCost() types.Money {
	return p.CostPrice.Mul(types.NewMoney(float64(p.CurrentStock)))
}

// InventoryValue returns currentStock × salePrice.
func (p *Product) InventoryValue() types.Money {
	return p.SalePrice.Mul(types.NewMoney(float64(p.CurrentStock)))
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.CurrentStock < 0 {
		return apperror.NewValidation("currentStock cannot be negative").
			WithDetail("field", "currentStock")
	}
	if p.MinStock < 0 {
		return apperror.NewValidation("minStock cannot be negative").
			WithDetail("field", "minStock")
	}
	if p.CostPrice.IsNegative() {
		return apperror.NewValidation("costPrice cannot be negative").
			WithDetail("field", "costPrice")
	}
	if p.SalePrice.IsNegative() {
		return apperror.NewValidation("salePrice cannot be negative").
			WithDetail("field", "salePrice")
	}

	return nil
}
