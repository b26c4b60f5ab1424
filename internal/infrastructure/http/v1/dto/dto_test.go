package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/customer"
	"esteticar/internal/domain/catalogs/vehicle"
	"esteticar/internal/domain/documents/sale"
)

func TestCreateCustomerRequest_ToEntity(t *testing.T) {
	req := CreateCustomerRequest{
		Name:         "Maria Silva",
		Document:     "123.456.789-09",
		DocumentType: "cpf",
		Email:        "maria@example.com",
		City:         "Curitiba",
	}

	c := req.ToEntity()

	assert.False(t, id.IsNil(c.ID))
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, customer.DocumentCPF, c.DocumentType)
	assert.Equal(t, "Curitiba", c.City)
	assert.True(t, c.Active)
}

func TestUpdateCustomerRequest_ApplyTo_PartialUpdate(t *testing.T) {
	c := customer.New("Maria Silva")
	c.Email = "maria@example.com"

	newPhone := "41999990000"
	updated := UpdateCustomerRequest{Phone: &newPhone}.ApplyTo(c)

	assert.Equal(t, "41999990000", updated.Phone)
	// Untouched fields survive
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, "maria@example.com", updated.Email)
}

func TestUpdateVehicleRequest_ApplyTo_RefreshesName(t *testing.T) {
	v := vehicle.New(id.New(), "ABC1D23")
	v.Brand = "Fiat"
	v.Model = "Uno"
	v.Name = v.DisplayName()

	newModel := "Argo"
	updated := UpdateVehicleRequest{Model: &newModel}.ApplyTo(v)

	assert.Equal(t, "Argo", updated.Model)
	assert.Equal(t, "Fiat Argo (ABC1D23)", updated.Name)
}

func TestCreateSaleRequest_ToInput(t *testing.T) {
	productID := id.New()
	req := CreateSaleRequest{
		CustomerID: id.New(),
		Items: []SaleItemRequest{
			{
				Type:      "product",
				ProductID: &productID,
				Quantity:  2,
				UnitPrice: "25.00",
			},
		},
		PaymentMethod: "pix",
	}

	in := req.ToInput()

	require.Len(t, in.Items, 1)
	assert.Equal(t, sale.ItemProduct, in.Items[0].Type)
	assert.Equal(t, 2, in.Items[0].Quantity)
	assert.Equal(t, "25.00", in.Items[0].UnitPrice)
	assert.Equal(t, req.CustomerID, in.CustomerID)
}
