// Package customer implements the customer registry.
package customer

import (
	"context"
	"strings"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
)

// DocumentType distinguishes individual (CPF) from company (CNPJ) customers.
type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"
	DocumentCNPJ DocumentType = "cnpj"
)

// Customer is a registry entity. Customers own vehicles and appear on
// sales, service orders and receivables.
type Customer struct {
	entity.Catalog

	// Document is the CPF/CNPJ, stored digits-only
	Document     string       `db:"document" json:"document"`
	DocumentType DocumentType `db:"document_type" json:"documentType"`

	Email string `db:"email" json:"email,omitempty"`
	Phone string `db:"phone" json:"phone,omitempty"`

	// Address fields
	Street  string `db:"street" json:"street,omitempty"`
	City    string `db:"city" json:"city,omitempty"`
	State   string `db:"state" json:"state,omitempty"`
	ZipCode string `db:"zip_code" json:"zipCode,omitempty"`
}

// New creates an active customer with a generated ID.
func New(name string) *Customer {
	return &Customer{Catalog: entity.NewCatalog("", name)}
}

// NormalizeDocument strips everything but digits from a CPF/CNPJ.
func NormalizeDocument(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	c.Document = NormalizeDocument(c.Document)

	if c.Document != "" {
		switch c.DocumentType {
		case DocumentCPF:
			if len(c.Document) != 11 {
				return apperror.NewValidation("cpf must have 11 digits").
					WithDetail("field", "document")
			}
		case DocumentCNPJ:
			if len(c.Document) != 14 {
				return apperror.NewValidation("cnpj must have 14 digits").
					WithDetail("field", "document")
			}
		default:
			return apperror.NewValidation("documentType must be cpf or cnpj").
				WithDetail("field", "documentType")
		}
	}

	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}

	return nil
}
