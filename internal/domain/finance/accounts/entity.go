// Package accounts implements accounts payable and receivable.
// Overdue is always derived from the due date, never persisted.
package accounts

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

// Kind distinguishes money the business owes from money it is owed.
type Kind string

const (
	KindPayable    Kind = "payable"
	KindReceivable Kind = "receivable"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindPayable || k == KindReceivable
}

// Account is a financial document: one payable or receivable installment.
type Account struct {
	entity.Document

	Kind        Kind           `db:"kind" json:"kind"`
	Description string         `db:"description" json:"description"`
	Amount      types.Money    `db:"amount" json:"amount"`
	DueDate     time.Time      `db:"due_date" json:"dueDate"`
	Status      payment.Status `db:"status" json:"status"`
	PaymentDate *time.Time     `db:"payment_date" json:"paymentDate,omitempty"`

	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`
}

// New creates a pending account.
func New(kind Kind, description string, amount types.Money, dueDate time.Time) *Account {
	return &Account{
		Document:    entity.NewDocument(),
		Kind:        kind,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      payment.StatusPending,
	}
}

// Pay transitions a pending account to paid, stamping the payment date.
func (a *Account) Pay(when time.Time) error {
	if err := a.Status.TransitionTo(payment.StatusPaid, "account"); err != nil {
		return err
	}
	a.Status = payment.StatusPaid
	when = when.UTC()
	a.PaymentDate = &when
	return nil
}

// Cancel transitions a pending account to cancelled.
func (a *Account) Cancel() error {
	if err := a.Status.TransitionTo(payment.StatusCancelled, "account"); err != nil {
		return err
	}
	a.Status = payment.StatusCancelled
	return nil
}

// IsOverdue reports whether the account is pending with a due date
// strictly before today. Time-of-day is zeroed on both sides; an account
// due today is not overdue.
func (a *Account) IsOverdue(today time.Time) bool {
	if a.Status != payment.StatusPending {
		return false
	}
	due := midnight(a.DueDate)
	now := midnight(today)
	return due.Before(now)
}

// DaysOverdue returns whole calendar days past the due date, zero when
// not overdue.
func (a *Account) DaysOverdue(today time.Time) int {
	if !a.IsOverdue(today) {
		return 0
	}
	return int(midnight(today).Sub(midnight(a.DueDate)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate implements entity.Validatable.
func (a *Account) Validate(ctx context.Context) error {
	if err := a.Document.Validate(ctx); err != nil {
		return err
	}

	if !a.Kind.Valid() {
		return apperror.NewValidation("kind must be payable or receivable").
			WithDetail("field", "kind")
	}
	if a.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}
	if !a.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	if a.DueDate.IsZero() {
		return apperror.NewValidation("dueDate is required").
			WithDetail("field", "dueDate")
	}
	if !a.Status.Valid() {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status")
	}
	if a.Status == payment.StatusPaid && a.PaymentDate == nil {
		return apperror.NewValidation("paid account requires paymentDate").
			WithDetail("field", "paymentDate")
	}

	return nil
}
