// Package employee implements the employee registry.
package employee

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/types"
)

// Employee is a registry entity. Dismissed employees are kept for history
// but always inactive.
type Employee struct {
	entity.Catalog

	CPF           string      `db:"cpf" json:"cpf"`
	Position      string      `db:"position" json:"position"`
	Salary        types.Money `db:"salary" json:"salary"`
	AdmissionDate time.Time   `db:"admission_date" json:"admissionDate"`
	DismissalDate *time.Time  `db:"dismissal_date" json:"dismissalDate,omitempty"`
}

// New creates an active employee admitted today.
func New(name, position string) *Employee {
	return &Employee{
		Catalog:       entity.NewCatalog("", name),
		Position:      position,
		AdmissionDate: time.Now().UTC(),
	}
}

// Dismiss records the dismissal date and deactivates the employee.
func (e *Employee) Dismiss(when time.Time) {
	e.DismissalDate = &when
	e.Deactivate()
}

// Validate implements entity.Validatable.
func (e *Employee) Validate(ctx context.Context) error {
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}

	if e.AdmissionDate.IsZero() {
		return apperror.NewValidation("admissionDate is required").
			WithDetail("field", "admissionDate")
	}
	if e.Salary.IsNegative() {
		return apperror.NewValidation("salary cannot be negative").
			WithDetail("field", "salary")
	}
	if e.DismissalDate != nil {
		if e.DismissalDate.Before(e.AdmissionDate) {
			return apperror.NewValidation("dismissalDate before admissionDate").
				WithDetail("field", "dismissalDate")
		}
		// A dismissed employee can never be active.
		if e.Active {
			return apperror.NewValidation("dismissed employee cannot be active").
				WithDetail("field", "active")
		}
	}

	return nil
}
