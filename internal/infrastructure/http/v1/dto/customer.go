package dto

import (
	"esteticar/internal/domain/catalogs/customer"
)

// CreateCustomerRequest for creating customers.
type CreateCustomerRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name" binding:"required"`
	Document     string `json:"document"`
	DocumentType string `json:"documentType"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// ToEntity maps the request to a new customer.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.New(r.Name)
	c.Code = r.Code
	c.Document = r.Document
	c.DocumentType = customer.DocumentType(r.DocumentType)
	c.Email = r.Email
	c.Phone = r.Phone
	c.Street = r.Street
	c.City = r.City
	c.State = r.State
	c.ZipCode = r.ZipCode
	return c
}

// UpdateCustomerRequest for updating customers. Nil fields are left as is.
type UpdateCustomerRequest struct {
	Name         *string `json:"name"`
	Document     *string `json:"document"`
	DocumentType *string `json:"documentType"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
	Active       *bool   `json:"active"`
}

// ApplyTo overlays the request onto an existing customer.
func (r UpdateCustomerRequest) ApplyTo(c *customer.Customer) *customer.Customer {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Document != nil {
		c.Document = *r.Document
	}
	if r.DocumentType != nil {
		c.DocumentType = customer.DocumentType(*r.DocumentType)
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Street != nil {
		c.Street = *r.Street
	}
	if r.City != nil {
		c.City = *r.City
	}
	if r.State != nil {
		c.State = *r.State
	}
	if r.ZipCode != nil {
		c.ZipCode = *r.ZipCode
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	return c
}
