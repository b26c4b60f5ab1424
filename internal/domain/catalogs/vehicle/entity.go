// Package vehicle implements the vehicle registry. Every vehicle belongs
// to a customer and is identified by its license plate.
package vehicle

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
)

// plateRe accepts both the legacy (ABC1234) and Mercosul (ABC1D23) formats.
var plateRe = regexp.MustCompile(`^[A-Z]{3}\d[A-Z0-9]\d{2}$`)

// Vehicle is a registry entity owned by a customer.
type Vehicle struct {
	entity.Catalog

	CustomerID   id.ID  `db:"customer_id" json:"customerId"`
	LicensePlate string `db:"license_plate" json:"licensePlate"`
	Brand        string `db:"brand" json:"brand"`
	Model        string `db:"model" json:"model"`
	Year         int    `db:"year" json:"year"`
	Color        string `db:"color" json:"color,omitempty"`
}

// New creates an active vehicle for a customer.
func New(customerID id.ID, plate string) *Vehicle {
	return &Vehicle{
		Catalog:      entity.NewCatalog("", ""),
		CustomerID:   customerID,
		LicensePlate: NormalizePlate(plate),
	}
}

// NormalizePlate upper-cases the plate and strips spaces and dashes.
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	plate = strings.ReplaceAll(plate, "-", "")
	plate = strings.ReplaceAll(plate, " ", "")
	return plate
}

// DisplayName composes the registry name from brand, model and plate.
func (v *Vehicle) DisplayName() string {
	parts := strings.TrimSpace(fmt.Sprintf("%s %s", v.Brand, v.Model))
	if parts == "" {
		return v.LicensePlate
	}
	return fmt.Sprintf("%s (%s)", parts, v.LicensePlate)
}

// Validate implements entity.Validatable.
func (v *Vehicle) Validate(ctx context.Context) error {
	v.LicensePlate = NormalizePlate(v.LicensePlate)
	if v.Name == "" {
		v.Name = v.DisplayName()
	}

	if err := v.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(v.CustomerID) {
		return apperror.NewValidation("customerId is required").
			WithDetail("field", "customerId")
	}
	if v.LicensePlate == "" {
		return apperror.NewValidation("licensePlate is required").
			WithDetail("field", "licensePlate")
	}
	if !plateRe.MatchString(v.LicensePlate) {
		return apperror.NewValidation("invalid license plate format").
			WithDetail("field", "licensePlate").
			WithDetail("value", v.LicensePlate)
	}
	if v.Year != 0 {
		maxYear := time.Now().Year() + 1
		if v.Year < 1900 || v.Year > maxYear {
			return apperror.NewValidation("year out of range").
				WithDetail("field", "year").
				WithDetail("value", v.Year)
		}
	}

	return nil
}
