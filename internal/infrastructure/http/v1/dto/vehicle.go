package dto

import (
	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/vehicle"
)

// CreateVehicleRequest for creating vehicles. Brand/model/year may be
// left empty when an external plate lookup is configured.
type CreateVehicleRequest struct {
	Code         string `json:"code"`
	CustomerID   id.ID  `json:"customerId" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
}

// ToEntity maps the request to a new vehicle.
func (r CreateVehicleRequest) ToEntity() *vehicle.Vehicle {
	v := vehicle.New(r.CustomerID, r.LicensePlate)
	v.Code = r.Code
	v.Brand = r.Brand
	v.Model = r.Model
	v.Year = r.Year
	v.Color = r.Color
	return v
}

// UpdateVehicleRequest for updating vehicles. Nil fields are left as is.
type UpdateVehicleRequest struct {
	CustomerID   *id.ID  `json:"customerId"`
	LicensePlate *string `json:"licensePlate"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	Active       *bool   `json:"active"`
}

// ApplyTo overlays the request onto an existing vehicle.
func (r UpdateVehicleRequest) ApplyTo(v *vehicle.Vehicle) *vehicle.Vehicle {
	if r.CustomerID != nil {
		v.CustomerID = *r.CustomerID
	}
	if r.LicensePlate != nil {
		v.LicensePlate = vehicle.NormalizePlate(*r.LicensePlate)
	}
	if r.Brand != nil {
		v.Brand = *r.Brand
	}
	if r.Model != nil {
		v.Model = *r.Model
	}
	if r.Year != nil {
		v.Year = *r.Year
	}
	if r.Color != nil {
		v.Color = *r.Color
	}
	if r.Active != nil {
		v.Active = *r.Active
	}
	// Name tracks brand/model/plate changes.
	v.Name = v.DisplayName()
	return v
}
