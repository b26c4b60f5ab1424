package dto

import (
	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/addon"
)

// CreateAddonRequest for creating additional services.
type CreateAddonRequest struct {
	Code            string      `json:"code"`
	Name            string      `json:"name" binding:"required"`
	AdditionalPrice types.Money `json:"additionalPrice"`
	Description     string      `json:"description"`
}

// ToEntity maps the request to a new addon.
func (r CreateAddonRequest) ToEntity() *addon.Addon {
	a := addon.New(r.Name, r.AdditionalPrice)
	a.Code = r.Code
	a.Description = r.Description
	return a
}

// UpdateAddonRequest for updating additional services. Nil fields are
// left as is.
type UpdateAddonRequest struct {
	Name            *string      `json:"name"`
	AdditionalPrice *types.Money `json:"additionalPrice"`
	Description     *string      `json:"description"`
	Active          *bool        `json:"active"`
}

// ApplyTo overlays the request onto an existing addon.
func (r UpdateAddonRequest) ApplyTo(a *addon.Addon) *addon.Addon {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.AdditionalPrice != nil {
		a.AdditionalPrice = *r.AdditionalPrice
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.Active != nil {
		a.Active = *r.Active
	}
	return a
}
