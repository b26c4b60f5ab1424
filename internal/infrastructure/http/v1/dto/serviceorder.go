package dto

import (
	"time"

	"esteticar/internal/core/id"
	"esteticar/internal/domain/documents/serviceorder"
)

// CreateServiceOrderRequest for creating service orders. Addon prices
// are resolved from the registry, never taken from the caller.
type CreateServiceOrderRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	BasePrice string `json:"basePrice" binding:"required"`

	CustomerID *id.ID     `json:"customerId"`
	VehicleID  *id.ID     `json:"vehicleId"`
	DueDate    *time.Time `json:"dueDate"`
	Date       *time.Time `json:"date"`
	Comment    string     `json:"comment"`

	AddonIDs []id.ID `json:"addonIds"`
}

// ToInput maps the request to the service-layer input.
func (r CreateServiceOrderRequest) ToInput() serviceorder.CreateInput {
	return serviceorder.CreateInput{
		Name:       r.Name,
		Category:   serviceorder.Category(r.Category),
		BasePrice:  r.BasePrice,
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		DueDate:    r.DueDate,
		Date:       r.Date,
		Comment:    r.Comment,
		AddonIDs:   r.AddonIDs,
	}
}

// UpdateServiceOrderRequest for updating pending service orders. Nil
// fields are left as is; a non-nil addonIds replaces the full set.
type UpdateServiceOrderRequest struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	BasePrice *string `json:"basePrice"`

	CustomerID *id.ID     `json:"customerId"`
	VehicleID  *id.ID     `json:"vehicleId"`
	DueDate    *time.Time `json:"dueDate"`
	Comment    *string    `json:"comment"`

	AddonIDs *[]id.ID `json:"addonIds"`
}

// ToInput maps the request to the service-layer input.
func (r UpdateServiceOrderRequest) ToInput() serviceorder.UpdateInput {
	in := serviceorder.UpdateInput{
		Name:       r.Name,
		BasePrice:  r.BasePrice,
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		DueDate:    r.DueDate,
		Comment:    r.Comment,
		AddonIDs:   r.AddonIDs,
	}
	if r.Category != nil {
		cat := serviceorder.Category(*r.Category)
		in.Category = &cat
	}
	return in
}
