// Package serviceorder implements service orders: the washes, detailing
// jobs and technical services sold to customers, optionally extended with
// priced addons.
package serviceorder

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

// Category groups service orders for reporting.
type Category string

const (
	CategorySimple    Category = "simple"
	CategoryDetailed  Category = "detailed"
	CategoryTechnical Category = "technical"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySimple, CategoryDetailed, CategoryTechnical:
		return true
	}
	return false
}

// Line is the typed join between a service order and an addon. Name and
// price are copied from the registry at attach time so later registry
// edits do not rewrite history.
type Line struct {
	ID              id.ID       `db:"id" json:"id"`
	ServiceOrderID  id.ID       `db:"service_order_id" json:"serviceOrderId"`
	AddonID         id.ID       `db:"addon_id" json:"addonId"`
	Name            string      `db:"name" json:"name"`
	AdditionalPrice types.Money `db:"additional_price" json:"additionalPrice"`
}

// ServiceOrder is a document entity.
type ServiceOrder struct {
	entity.Document

	Name     string   `db:"name" json:"name"`
	Category Category `db:"category" json:"category"`

	BasePrice  types.Money `db:"base_price" json:"basePrice"`
	TotalPrice types.Money `db:"total_price" json:"totalPrice"`

	PaymentStatus payment.Status `db:"payment_status" json:"paymentStatus"`
	PaymentMethod payment.Method `db:"payment_method" json:"paymentMethod,omitempty"`

	CustomerID *id.ID     `db:"customer_id" json:"customerId,omitempty"`
	VehicleID  *id.ID     `db:"vehicle_id" json:"vehicleId,omitempty"`
	DueDate    *time.Time `db:"due_date" json:"dueDate,omitempty"`

	Addons []Line `db:"-" json:"addons"`
}

// New creates a pending service order dated now.
func New(name string, category Category, basePrice types.Money) *ServiceOrder {
	o := &ServiceOrder{
		Document:      entity.NewDocument(),
		Name:          name,
		Category:      category,
		BasePrice:     basePrice,
		PaymentStatus: payment.StatusPending,
	}
	o.RecomputeTotal()
	return o
}

// RecomputeTotal derives TotalPrice = basePrice + Σ addon prices.
// Totals are always computed here, never taken from the caller.
func (o *ServiceOrder) RecomputeTotal() {
	total := o.BasePrice
	for _, line := range o.Addons {
		total = total.Add(line.AdditionalPrice)
	}
	o.TotalPrice = total
}

// Pay transitions the order to paid. Only pending orders can be paid.
func (o *ServiceOrder) Pay(method payment.Method) error {
	if err := o.PaymentStatus.TransitionTo(payment.StatusPaid, "service order"); err != nil {
		return err
	}
	if !method.Valid() {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod")
	}
	o.PaymentStatus = payment.StatusPaid
	o.PaymentMethod = method
	return nil
}

// Cancel transitions the order to cancelled. Only pending orders can be
// cancelled.
func (o *ServiceOrder) Cancel() error {
	if err := o.PaymentStatus.TransitionTo(payment.StatusCancelled, "service order"); err != nil {
		return err
	}
	o.PaymentStatus = payment.StatusCancelled
	return nil
}

// IsOverdue reports whether the order is pending with a due date strictly
// before today. Comparison uses calendar dates only; an order due today is
// not overdue.
func (o *ServiceOrder) IsOverdue(today time.Time) bool {
	if o.PaymentStatus != payment.StatusPending || o.DueDate == nil {
		return false
	}
	due := time.Date(o.DueDate.Year(), o.DueDate.Month(), o.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(now)
}

// Validate implements entity.Validatable.
func (o *ServiceOrder) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if o.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if !o.Category.Valid() {
		return apperror.NewValidation("category must be simple, detailed or technical").
			WithDetail("field", "category")
	}
	if o.BasePrice.IsNegative() {
		return apperror.NewValidation("basePrice cannot be negative").
			WithDetail("field", "basePrice")
	}
	if !o.PaymentStatus.Valid() {
		return apperror.NewValidation("invalid payment status").
			WithDetail("field", "paymentStatus")
	}
	for _, line := range o.Addons {
		if line.AdditionalPrice.IsNegative() {
			return apperror.NewValidation("addon price cannot be negative").
				WithDetail("addonId", line.AddonID.String())
		}
	}

	return nil
}
