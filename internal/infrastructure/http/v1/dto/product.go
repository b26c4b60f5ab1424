package dto

import (
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/product"
)

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Code         string      `json:"code"`
	Name         string      `json:"name" binding:"required"`
	Category     string      `json:"category" binding:"required"`
	SKU          string      `json:"sku"`
	CostPrice    types.Money `json:"costPrice"`
	SalePrice    types.Money `json:"salePrice"`
	CurrentStock int         `json:"currentStock"`
	MinStock     int         `json:"minStock"`
	SupplierID   *id.ID      `json:"supplierId"`
}

// ToEntity maps the request to a new product.
func (r CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Name, r.Category)
	p.Code = r.Code
	p.SKU = r.SKU
	p.CostPrice = r.CostPrice
	p.SalePrice = r.SalePrice
	p.CurrentStock = r.CurrentStock
	p.MinStock = r.MinStock
	p.SupplierID = r.SupplierID
	return p
}

// UpdateProductRequest for updating products. Nil fields are left as is.
// Stock is intentionally absent; it only moves through sales, cancels
// and explicit adjustments.
type UpdateProductRequest struct {
	Name       *string      `json:"name"`
	Category   *string      `json:"category"`
	SKU        *string      `json:"sku"`
	CostPrice  *types.Money `json:"costPrice"`
	SalePrice  *types.Money `json:"salePrice"`
	MinStock   *int         `json:"minStock"`
	SupplierID *id.ID       `json:"supplierId"`
	Active     *bool        `json:"active"`
}

// ApplyTo overlays the request onto an existing product.
func (r UpdateProductRequest) ApplyTo(p *product.Product) *product.Product {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.SKU != nil {
		p.SKU = *r.SKU
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.SalePrice != nil {
		p.SalePrice = *r.SalePrice
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}
	if r.SupplierID != nil {
		p.SupplierID = r.SupplierID
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	return p
}

// AdjustStockRequest applies a manual stock correction.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// StockResponse reports the product's stock after an adjustment.
type StockResponse struct {
	ProductID    string `json:"productId"`
	CurrentStock int    `json:"currentStock"`
	Status       string `json:"status"`
}
