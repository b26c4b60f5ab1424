package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain"
	"esteticar/internal/domain/documents/sale"
	domainFilter "esteticar/internal/domain/filter"
	"esteticar/internal/domain/payment"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves the sale document endpoints.
type SaleHandler struct {
	*BaseHandler
	svc *sale.Service
}

// NewSaleHandler creates the sale handler.
func NewSaleHandler(base *BaseHandler, svc *sale.Service) *SaleHandler {
	return &SaleHandler{BaseHandler: base, svc: svc}
}

// parseDocumentFilter reads the shared list query params for documents.
func parseDocumentFilter(h *BaseHandler, c *gin.Context) (domain.ListFilter, bool) {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if filterJSON := c.Query("filter"); filterJSON != "" {
		var advFilters []domainFilter.Item
		if err := json.Unmarshal([]byte(filterJSON), &advFilters); err != nil {
			h.Error(c, apperror.NewValidation("invalid filter format (json expected)"))
			return filter, false
		}
		filter.AdvancedFilters = advFilters
	}
	return filter, true
}

// Create handles POST /sales.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sl, err := h.svc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, sl)
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	sl, err := h.svc.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sl)
}

// List handles GET /sales.
func (h *SaleHandler) List(c *gin.Context) {
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

// Pay handles POST /sales/:id/pay.
func (h *SaleHandler) Pay(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.PayRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sl, err := h.svc.Pay(c.Request.Context(), saleID, payment.Method(req.PaymentMethod))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sl)
}

// Cancel handles POST /sales/:id/cancel.
func (h *SaleHandler) Cancel(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	sl, err := h.svc.Cancel(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sl)
}

// Delete handles DELETE /sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), saleID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
