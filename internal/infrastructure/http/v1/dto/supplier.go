package dto

import (
	"esteticar/internal/domain/catalogs/supplier"
)

// CreateSupplierRequest for creating suppliers.
type CreateSupplierRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Contact  string `json:"contact"`
}

// ToEntity maps the request to a new supplier.
func (r CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.New(r.Name)
	s.Code = r.Code
	s.Document = r.Document
	s.Email = r.Email
	s.Phone = r.Phone
	s.Contact = r.Contact
	return s
}

// UpdateSupplierRequest for updating suppliers. Nil fields are left as is.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Contact  *string `json:"contact"`
	Active   *bool   `json:"active"`
}

// ApplyTo overlays the request onto an existing supplier.
func (r UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) *supplier.Supplier {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Document != nil {
		s.Document = *r.Document
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.Contact != nil {
		s.Contact = *r.Contact
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return s
}
