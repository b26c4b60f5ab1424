package handlers

import (
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// CustomerHandler serves the customer registry endpoints.
type CustomerHandler struct {
	*CatalogHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
}

// NewCustomerHandler creates the customer handler.
func NewCustomerHandler(base *BaseHandler, svc *customer.Service) *CustomerHandler {
	return &CustomerHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]{
			Service:    svc.CatalogService,
			EntityName: "customer",
			MapCreateDTO: func(r dto.CreateCustomerRequest) *customer.Customer {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
				return r.ApplyTo(existing)
			},
		}),
	}
}
