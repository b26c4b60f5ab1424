package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/finance/cashbook"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// CashbookHandler serves the cash movement endpoints.
type CashbookHandler struct {
	*BaseHandler
	svc *cashbook.Service
}

// NewCashbookHandler creates the cashbook handler.
func NewCashbookHandler(base *BaseHandler, svc *cashbook.Service) *CashbookHandler {
	return &CashbookHandler{BaseHandler: base, svc: svc}
}

// Create handles POST /cashbook.
func (h *CashbookHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	movement := req.ToEntity()
	if err := h.svc.Create(c.Request.Context(), movement); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, movement)
}

// Get handles GET /cashbook/:id.
func (h *CashbookHandler) Get(c *gin.Context) {
	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	movement, err := h.svc.GetByID(c.Request.Context(), movementID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, movement)
}

// List handles GET /cashbook.
func (h *CashbookHandler) List(c *gin.Context) {
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

// Update handles PUT /cashbook/:id.
func (h *CashbookHandler) Update(c *gin.Context) {
	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	movement, err := h.svc.GetByID(c.Request.Context(), movementID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := req.ApplyTo(movement)
	if err := h.svc.Update(c.Request.Context(), updated); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /cashbook/:id.
func (h *CashbookHandler) Delete(c *gin.Context) {
	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), movementID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
