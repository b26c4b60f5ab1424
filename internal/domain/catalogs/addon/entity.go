// Package addon implements the additional-service registry. Addons are
// attached to service orders through a typed join and priced on top of
// the order's base price.
package addon

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/types"
)

// Addon is a registry entity referenced by service orders.
type Addon struct {
	entity.Catalog

	AdditionalPrice types.Money `db:"additional_price" json:"additionalPrice"`
	Description     string      `db:"description" json:"description,omitempty"`
}

// New creates an active addon.
func New(name string, price types.Money) *Addon {
	return &Addon{
		Catalog:         entity.NewCatalog("", name),
		AdditionalPrice: price,
	}
}

// Validate implements entity.Validatable.
func (a *Addon) Validate(ctx context.Context) error {
	if err := a.Catalog.Validate(ctx); err != nil {
		return err
	}

	if a.AdditionalPrice.IsNegative() {
		return apperror.NewValidation("additionalPrice cannot be negative").
			WithDetail("field", "additionalPrice")
	}

	return nil
}
