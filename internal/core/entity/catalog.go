package entity

import (
	"context"

	"esteticar/internal/core/apperror"
)

// Catalog is the base type for registry data: customers, vehicles,
// employees, suppliers, products, additional services.
type Catalog struct {
	BaseEntity

	// Code is a human-readable identifier (auto-generated when blank)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Active is the business-level soft-deactivation flag. Deactivation is
	// the default "delete" semantics for registry entities.
	Active bool `db:"active" json:"active"`
}

// NewCatalog creates a new Catalog with generated ID, active by default.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
		Active:     true,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be auto-generated, so it's optional at creation
	// but required at save time

	return nil
}

// Deactivate clears the active flag.
func (c *Catalog) Deactivate() {
	c.Active = false
}

// Activate sets the active flag.
func (c *Catalog) Activate() {
	c.Active = true
}
