// Package payment defines the shared payment vocabulary used by sales,
// service orders and financial accounts.
package payment

import "esteticar/internal/core/apperror"

// Status is the lifecycle state of a payable record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// CanPay reports whether a record in this status may transition to paid.
// Only pending records can be paid.
func (s Status) CanPay() bool {
	return s == StatusPending
}

// CanCancel reports whether a record in this status may be cancelled.
func (s Status) CanCancel() bool {
	return s == StatusPending
}

// TransitionTo validates a status change and returns a structured error
// naming the entity and both states when the move is not allowed.
func (s Status) TransitionTo(target Status, entity string) error {
	switch target {
	case StatusPaid:
		if s.CanPay() {
			return nil
		}
	case StatusCancelled:
		if s.CanCancel() {
			return nil
		}
	}
	return apperror.NewInvalidStateTransition(entity, string(s), string(target))
}

// Method identifies how a payment was (or will be) made.
type Method string

const (
	MethodCash     Method = "cash"
	MethodCredit   Method = "credit_card"
	MethodDebit    Method = "debit_card"
	MethodPix      Method = "pix"
	MethodTransfer Method = "bank_transfer"
	MethodBoleto   Method = "boleto"
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCredit, MethodDebit, MethodPix, MethodTransfer, MethodBoleto:
		return true
	}
	return false
}
