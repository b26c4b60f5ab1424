package handlers

import (
	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/product"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product registry endpoints, including
// manual stock adjustments.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	svc *product.Service
}

// NewProductHandler creates the product handler.
func NewProductHandler(base *BaseHandler, svc *product.Service) *ProductHandler {
	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
			Service:    svc.CatalogService,
			EntityName: "product",
			MapCreateDTO: func(r dto.CreateProductRequest) *product.Product {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateProductRequest, existing *product.Product) *product.Product {
				return r.ApplyTo(existing)
			},
		}),
		svc: svc,
	}
}

// AdjustStock handles POST /products/:id/adjust-stock.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.AdjustStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.AdjustStock(c.Request.Context(), productID, req.Delta, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.StockResponse{
		ProductID:    p.ID.String(),
		CurrentStock: p.CurrentStock,
		Status:       string(p.StockStatus()),
	})
}
