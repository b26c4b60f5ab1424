package handlers

import (
	"esteticar/internal/domain/catalogs/employee"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// EmployeeHandler serves the employee registry endpoints.
type EmployeeHandler struct {
	*CatalogHandler[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
}

// NewEmployeeHandler creates the employee handler.
func NewEmployeeHandler(base *BaseHandler, svc *employee.Service) *EmployeeHandler {
	return &EmployeeHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
			Service:    svc.CatalogService,
			EntityName: "employee",
			MapCreateDTO: func(r dto.CreateEmployeeRequest) *employee.Employee {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateEmployeeRequest, existing *employee.Employee) *employee.Employee {
				return r.ApplyTo(existing)
			},
		}),
	}
}
