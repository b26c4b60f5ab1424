// Package sale implements sales documents: product and service line
// items with server-derived totals and stock movement on the product
// lines.
package sale

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
	"esteticar/internal/core/types"
	"esteticar/internal/domain/payment"
)

// ItemType distinguishes product lines (which move stock) from service
// lines (which do not).
type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

// Item is a sale line. TotalPrice is derived, never caller-trusted.
type Item struct {
	ID     id.ID    `db:"id" json:"id"`
	SaleID id.ID    `db:"sale_id" json:"saleId"`
	Type   ItemType `db:"type" json:"type"`

	ProductID *id.ID `db:"product_id" json:"productId,omitempty"`
	ServiceID *id.ID `db:"service_id" json:"serviceId,omitempty"`

	Description string      `db:"description" json:"description"`
	Quantity    int         `db:"quantity" json:"quantity"`
	UnitPrice   types.Money `db:"unit_price" json:"unitPrice"`
	Discount    types.Money `db:"discount" json:"discount"`
	TotalPrice  types.Money `db:"total_price" json:"totalPrice"`
}

// Recompute derives TotalPrice = quantity × unitPrice − discount.
func (i *Item) Recompute() {
	gross := i.UnitPrice.Mul(types.NewMoney(float64(i.Quantity)))
	i.TotalPrice = gross.Sub(i.Discount)
}

// Sale is a document entity.
type Sale struct {
	entity.Document

	CustomerID id.ID  `db:"customer_id" json:"customerId"`
	VehicleID  *id.ID `db:"vehicle_id" json:"vehicleId,omitempty"`

	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	Discount types.Money `db:"discount" json:"discount"`
	Total    types.Money `db:"total" json:"total"`

	PaymentMethod payment.Method `db:"payment_method" json:"paymentMethod"`
	PaymentStatus payment.Status `db:"payment_status" json:"paymentStatus"`

	Items []Item `db:"-" json:"items"`
}

// New creates a pending sale dated now.
func New(customerID id.ID) *Sale {
	return &Sale{
		Document:      entity.NewDocument(),
		CustomerID:    customerID,
		PaymentStatus: payment.StatusPending,
	}
}

// RecomputeTotals derives every item total, the subtotal and the final
// total from scratch.
func (s *Sale) RecomputeTotals() {
	subtotal := types.Zero()
	for i := range s.Items {
		s.Items[i].Recompute()
		subtotal = subtotal.Add(s.Items[i].TotalPrice)
	}
	s.Subtotal = subtotal
	s.Total = subtotal.Sub(s.Discount)
}

// CheckDeclaredTotals compares caller-declared totals against the derived
// ones. Any mismatch is a validation error so silent corrections never
// mask client bugs.
func (s *Sale) CheckDeclaredTotals(subtotal, total types.Money) error {
	if !s.Subtotal.Equal(subtotal) {
		return apperror.NewValidation("declared subtotal does not match items").
			WithDetail("declared", subtotal.String()).
			WithDetail("computed", s.Subtotal.String())
	}
	if !s.Total.Equal(total) {
		return apperror.NewValidation("declared total does not match items").
			WithDetail("declared", total.String()).
			WithDetail("computed", s.Total.String())
	}
	return nil
}

// Pay transitions the sale to paid. Only pending sales can be paid.
func (s *Sale) Pay(method payment.Method) error {
	if err := s.PaymentStatus.TransitionTo(payment.StatusPaid, "sale"); err != nil {
		return err
	}
	if !method.Valid() {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod")
	}
	s.PaymentStatus = payment.StatusPaid
	s.PaymentMethod = method
	return nil
}

// Cancel transitions the sale to cancelled. Only pending sales can be
// cancelled.
func (s *Sale) Cancel() error {
	if err := s.PaymentStatus.TransitionTo(payment.StatusCancelled, "sale"); err != nil {
		return err
	}
	s.PaymentStatus = payment.StatusCancelled
	return nil
}

// IsOverdue reports whether the sale is pending with a business date
// strictly before today (calendar comparison).
func (s *Sale) IsOverdue(today time.Time) bool {
	if s.PaymentStatus != payment.StatusPending {
		return false
	}
	d := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(now)
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.CustomerID) {
		return apperror.NewValidation("customerId is required").
			WithDetail("field", "customerId")
	}
	if len(s.Items) == 0 {
		return apperror.NewValidation("sale must have at least one item").
			WithDetail("field", "items")
	}
	if s.Discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}
	if !s.PaymentMethod.Valid() {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod")
	}
	if !s.PaymentStatus.Valid() {
		return apperror.NewValidation("invalid payment status").
			WithDetail("field", "paymentStatus")
	}

	for idx, item := range s.Items {
		if err := validateItem(idx, item); err != nil {
			return err
		}
	}

	return nil
}

func validateItem(idx int, item Item) error {
	if item.Type != ItemProduct && item.Type != ItemService {
		return apperror.NewValidation("item type must be product or service").
			WithDetail("index", idx)
	}
	if item.Quantity <= 0 {
		return apperror.NewValidation("item quantity must be positive").
			WithDetail("index", idx)
	}
	if item.UnitPrice.IsNegative() {
		return apperror.NewValidation("item unitPrice cannot be negative").
			WithDetail("index", idx)
	}
	if item.Discount.IsNegative() {
		return apperror.NewValidation("item discount cannot be negative").
			WithDetail("index", idx)
	}
	if item.Type == ItemProduct && (item.ProductID == nil || id.IsNil(*item.ProductID)) {
		return apperror.NewValidation("product item requires productId").
			WithDetail("index", idx)
	}
	if item.Type == ItemService && (item.ServiceID == nil || id.IsNil(*item.ServiceID)) {
		return apperror.NewValidation("service item requires serviceId").
			WithDetail("index", idx)
	}
	return nil
}
