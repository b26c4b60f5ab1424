package dto

import (
	"time"

	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/domain/finance/cashbook"
)

// CreateAccountRequest for creating payables/receivables. The kind
// comes from the route, not the body.
type CreateAccountRequest struct {
	Description string      `json:"description" binding:"required"`
	Amount      types.Money `json:"amount" binding:"required"`
	DueDate     time.Time   `json:"dueDate" binding:"required"`
	Date        *time.Time  `json:"date"`

	SupplierID *id.ID `json:"supplierId"`
	CustomerID *id.ID `json:"customerId"`
	Comment    string `json:"comment"`
}

// ToEntity maps the request to a new account of the given kind.
func (r CreateAccountRequest) ToEntity(kind accounts.Kind) *accounts.Account {
	a := accounts.New(kind, r.Description, r.Amount, r.DueDate.UTC())
	a.SupplierID = r.SupplierID
	a.CustomerID = r.CustomerID
	a.Comment = r.Comment
	if r.Date != nil {
		a.Date = r.Date.UTC()
	}
	return a
}

// UpdateAccountRequest for updating pending accounts. Nil fields are
// left as is.
type UpdateAccountRequest struct {
	Description *string      `json:"description"`
	Amount      *types.Money `json:"amount"`
	DueDate     *time.Time   `json:"dueDate"`
	SupplierID  *id.ID       `json:"supplierId"`
	CustomerID  *id.ID       `json:"customerId"`
	Comment     *string      `json:"comment"`
}

// ApplyTo overlays the request onto an existing account.
func (r UpdateAccountRequest) ApplyTo(a *accounts.Account) *accounts.Account {
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.Amount != nil {
		a.Amount = *r.Amount
	}
	if r.DueDate != nil {
		a.DueDate = r.DueDate.UTC()
	}
	if r.SupplierID != nil {
		a.SupplierID = r.SupplierID
	}
	if r.CustomerID != nil {
		a.CustomerID = r.CustomerID
	}
	if r.Comment != nil {
		a.Comment = *r.Comment
	}
	return a
}

// PayAccountRequest stamps the payment date. Zero means "now".
type PayAccountRequest struct {
	PaymentDate *time.Time `json:"paymentDate"`
}

// CreateMovementRequest for creating cashbook movements.
type CreateMovementRequest struct {
	Type        string      `json:"type" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Amount      types.Money `json:"amount" binding:"required"`
	Date        *time.Time  `json:"date"`
	Comment     string      `json:"comment"`
}

// ToEntity maps the request to a new movement.
func (r CreateMovementRequest) ToEntity() *cashbook.Movement {
	m := cashbook.New(cashbook.MovementType(r.Type), cashbook.Category(r.Category), r.Description, r.Amount)
	m.Comment = r.Comment
	if r.Date != nil {
		m.Date = r.Date.UTC()
	}
	return m
}

// UpdateMovementRequest for updating cashbook movements. Nil fields are
// left as is.
type UpdateMovementRequest struct {
	Type        *string      `json:"type"`
	Category    *string      `json:"category"`
	Description *string      `json:"description"`
	Amount      *types.Money `json:"amount"`
	Date        *time.Time   `json:"date"`
	Comment     *string      `json:"comment"`
}

// ApplyTo overlays the request onto an existing movement.
func (r UpdateMovementRequest) ApplyTo(m *cashbook.Movement) *cashbook.Movement {
	if r.Type != nil {
		m.Type = cashbook.MovementType(*r.Type)
	}
	if r.Category != nil {
		m.Category = cashbook.Category(*r.Category)
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Amount != nil {
		m.Amount = *r.Amount
	}
	if r.Date != nil {
		m.Date = r.Date.UTC()
	}
	if r.Comment != nil {
		m.Comment = *r.Comment
	}
	return m
}
