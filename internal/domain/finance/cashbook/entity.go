// Package cashbook implements the cash movement register feeding the
// daily cash-flow report.
package cashbook

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/types"
)

// MovementType is the direction of a cash movement.
type MovementType string

const (
	TypeIncome  MovementType = "income"
	TypeExpense MovementType = "expense"
)

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category groups movements for reporting.
type Category string

const (
	CategorySales     Category = "sales"
	CategoryServices  Category = "services"
	CategorySupplies  Category = "supplies"
	CategoryPayroll   Category = "payroll"
	CategoryRent      Category = "rent"
	CategoryUtilities Category = "utilities"
	CategoryTaxes     Category = "taxes"
	CategoryOther     Category = "other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySales, CategoryServices, CategorySupplies, CategoryPayroll,
		CategoryRent, CategoryUtilities, CategoryTaxes, CategoryOther:
		return true
	}
	return false
}

// Movement is a single cash register entry.
type Movement struct {
	entity.Document

	Type        MovementType `db:"type" json:"type"`
	Category    Category     `db:"category" json:"category"`
	Description string       `db:"description" json:"description"`
	Amount      types.Money  `db:"amount" json:"amount"`
}

// New creates a movement dated now.
func New(t MovementType, category Category, description string, amount types.Money) *Movement {
	return &Movement{
		Document:    entity.NewDocument(),
		Type:        t,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

// Validate implements entity.Validatable.
func (m *Movement) Validate(ctx context.Context) error {
	if err := m.Document.Validate(ctx); err != nil {
		return err
	}

	if !m.Type.Valid() {
		return apperror.NewValidation("type must be income or expense").
			WithDetail("field", "type")
	}
	if !m.Category.Valid() {
		return apperror.NewValidation("unknown category").
			WithDetail("field", "category").
			WithDetail("value", string(m.Category))
	}
	if m.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}
	if !m.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	return nil
}
