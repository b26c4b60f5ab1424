package dto

import (
	"time"

	"esteticar/internal/core/id"
	"esteticar/internal/domain/documents/sale"
	"esteticar/internal/domain/payment"
)

// SaleItemRequest is one line of a sale. Money comes as strings so the
// client controls the exact decimal representation.
type SaleItemRequest struct {
	Type        string `json:"type" binding:"required"`
	ProductID   *id.ID `json:"productId"`
	ServiceID   *id.ID `json:"serviceId"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   string `json:"unitPrice" binding:"required"`
	Discount    string `json:"discount"`
}

// CreateSaleRequest for creating sales.
type CreateSaleRequest struct {
	CustomerID    id.ID             `json:"customerId" binding:"required"`
	VehicleID     *id.ID            `json:"vehicleId"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
	Discount      string            `json:"discount"`
	PaymentMethod string            `json:"paymentMethod"`
	Date          *time.Time        `json:"date"`
	Comment       string            `json:"comment"`

	// Optional client-side totals, validated against the derived ones.
	Subtotal *string `json:"subtotal"`
	Total    *string `json:"total"`
}

// ToInput maps the request to the service-layer input.
func (r CreateSaleRequest) ToInput() sale.CreateInput {
	in := sale.CreateInput{
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		Discount:         r.Discount,
		PaymentMethod:    payment.Method(r.PaymentMethod),
		Date:             r.Date,
		Comment:          r.Comment,
		DeclaredSubtotal: r.Subtotal,
		DeclaredTotal:    r.Total,
	}
	for _, item := range r.Items {
		in.Items = append(in.Items, sale.ItemInput{
			Type:        sale.ItemType(item.Type),
			ProductID:   item.ProductID,
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
		})
	}
	return in
}

// PayRequest transitions a document to paid.
type PayRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
