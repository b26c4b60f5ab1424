package handlers

import (
	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/vehicle"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// VehicleHandler serves the vehicle registry endpoints, including
// plate lookup and the per-customer listing.
type VehicleHandler struct {
	*CatalogHandler[*vehicle.Vehicle, dto.CreateVehicleRequest, dto.UpdateVehicleRequest]
	svc *vehicle.Service
}

// NewVehicleHandler creates the vehicle handler.
func NewVehicleHandler(base *BaseHandler, svc *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*vehicle.Vehicle, dto.CreateVehicleRequest, dto.UpdateVehicleRequest]{
			Service:    svc.CatalogService,
			EntityName: "vehicle",
			MapCreateDTO: func(r dto.CreateVehicleRequest) *vehicle.Vehicle {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateVehicleRequest, existing *vehicle.Vehicle) *vehicle.Vehicle {
				return r.ApplyTo(existing)
			},
		}),
		svc: svc,
	}
}

// GetByPlate handles GET /vehicles/plate/:plate.
func (h *VehicleHandler) GetByPlate(c *gin.Context) {
	v, err := h.svc.GetByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, v)
}

// ListByCustomer handles GET /customers/:id/vehicles.
func (h *VehicleHandler) ListByCustomer(c *gin.Context) {
	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	vehicles, err := h.svc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, vehicles)
}
