package dto

import (
	"time"

	"esteticar/internal/core/types"
	"esteticar/internal/domain/catalogs/employee"
)

// CreateEmployeeRequest for creating employees.
type CreateEmployeeRequest struct {
	Code          string      `json:"code"`
	Name          string      `json:"name" binding:"required"`
	CPF           string      `json:"cpf"`
	Position      string      `json:"position" binding:"required"`
	Salary        types.Money `json:"salary"`
	AdmissionDate *time.Time  `json:"admissionDate"`
}

// ToEntity maps the request to a new employee.
func (r CreateEmployeeRequest) ToEntity() *employee.Employee {
	e := employee.New(r.Name, r.Position)
	e.Code = r.Code
	e.CPF = r.CPF
	e.Salary = r.Salary
	if r.AdmissionDate != nil {
		e.AdmissionDate = r.AdmissionDate.UTC()
	}
	return e
}

// UpdateEmployeeRequest for updating employees. Nil fields are left as is.
type UpdateEmployeeRequest struct {
	Name          *string      `json:"name"`
	CPF           *string      `json:"cpf"`
	Position      *string      `json:"position"`
	Salary        *types.Money `json:"salary"`
	AdmissionDate *time.Time   `json:"admissionDate"`
	DismissalDate *time.Time   `json:"dismissalDate"`
	Active        *bool        `json:"active"`
}

// ApplyTo overlays the request onto an existing employee. Setting a
// dismissal date also deactivates the employee.
func (r UpdateEmployeeRequest) ApplyTo(e *employee.Employee) *employee.Employee {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.CPF != nil {
		e.CPF = *r.CPF
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.AdmissionDate != nil {
		e.AdmissionDate = r.AdmissionDate.UTC()
	}
	if r.Active != nil {
		e.Active = *r.Active
	}
	if r.DismissalDate != nil {
		e.Dismiss(r.DismissalDate.UTC())
	}
	return e
}
