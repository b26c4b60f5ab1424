package handlers

import (
	"esteticar/internal/domain/catalogs/addon"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// AddonHandler serves the additional-service registry endpoints.
type AddonHandler struct {
	*CatalogHandler[*addon.Addon, dto.CreateAddonRequest, dto.UpdateAddonRequest]
}

// NewAddonHandler creates the addon handler.
func NewAddonHandler(base *BaseHandler, svc *addon.Service) *AddonHandler {
	return &AddonHandler{
		CatalogHandler: NewCatalogHandler(base, CatalogHandlerConfig[*addon.Addon, dto.CreateAddonRequest, dto.UpdateAddonRequest]{
			Service:    svc.CatalogService,
			EntityName: "addon",
			MapCreateDTO: func(r dto.CreateAddonRequest) *addon.Addon {
				return r.ToEntity()
			},
			MapUpdateDTO: func(r dto.UpdateAddonRequest, existing *addon.Addon) *addon.Addon {
				return r.ApplyTo(existing)
			},
		}),
	}
}
