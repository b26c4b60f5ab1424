// Package supplier implements the supplier registry.
package supplier

import (
	"context"
	"strings"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
)

// Supplier is a registry entity. Suppliers own products and appear on
// accounts payable.
type Supplier struct {
	entity.Catalog

	// Document is the CNPJ, stored digits-only
	Document string `db:"document" json:"document"`
	Email    string `db:"email" json:"email,omitempty"`
	Phone    string `db:"phone" json:"phone,omitempty"`
	Contact  string `db:"contact" json:"contact,omitempty"`
}

// New creates an active supplier.
func New(name string) *Supplier {
	return &Supplier{Catalog: entity.NewCatalog("", name)}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	var digits strings.Builder
	for _, r := range s.Document {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s.Document = digits.String()

	if s.Document != "" && len(s.Document) != 14 {
		return apperror.NewValidation("cnpj must have 14 digits").
			WithDetail("field", "document")
	}

	return nil
}
