package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/documents/serviceorder"
	"esteticar/internal/domain/payment"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// ServiceOrderHandler serves the service-order document endpoints.
type ServiceOrderHandler struct {
	*BaseHandler
	svc *serviceorder.Service
}

// NewServiceOrderHandler creates the service-order handler.
func NewServiceOrderHandler(base *BaseHandler, svc *serviceorder.Service) *ServiceOrderHandler {
	return &ServiceOrderHandler{BaseHandler: base, svc: svc}
}

// Create handles POST /service-orders.
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var req dto.CreateServiceOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.svc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get handles GET /service-orders/:id.
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	order, err := h.svc.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, order)
}

// List handles GET /service-orders.
func (h *ServiceOrderHandler) List(c *gin.Context) {
	filter, ok := parseDocumentFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Update handles PUT /service-orders/:id.
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateServiceOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.svc.Update(c.Request.Context(), orderID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, order)
}

// Pay handles POST /service-orders/:id/pay.
func (h *ServiceOrderHandler) Pay(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.PayRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.svc.Pay(c.Request.Context(), orderID, payment.Method(req.PaymentMethod))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, order)
}

// Cancel handles POST /service-orders/:id/cancel.
func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	order, err := h.svc.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, order)
}

// Delete handles DELETE /service-orders/:id.
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), orderID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
