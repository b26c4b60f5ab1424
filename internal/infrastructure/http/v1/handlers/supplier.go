package handlers

import (
	"esteticar/internal/domain/catalogs/supplier"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// SupplierHandler serves the supplier registry endpoints.
type SupplierHandler struct {
	*CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]
}

// NewSupplierHandler creates the supplier handler.
func NewSupplierHandler(base *BaseHandler, svc *supplier.Service) *SupplierHandler {
	return &SupplierHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
			Service:    svc.CatalogService,
			EntityName: "supplier",
			MapCreateDTO: func(r dto.CreateSupplierRequest) *supplier.Supplier {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
				return r.ApplyTo(existing)
			},
		}),
	}
}
