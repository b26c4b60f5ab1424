package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/finance/accounts"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// AccountHandler serves one kind of financial account. Payables and
// receivables get separate instances mounted on separate routes.
type AccountHandler struct {
	*BaseHandler
	svc  *accounts.Service
	kind accounts.Kind
}

// NewAccountHandler creates an account handler bound to a kind.
func NewAccountHandler(base *BaseHandler, svc *accounts.Service, kind accounts.Kind) *AccountHandler {
	return &AccountHandler{BaseHandler: base, svc: svc, kind: kind}
}

// Create handles POST /accounts-{kind}.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account := req.ToEntity(h.kind)
	if err := h.svc.Create(c.Request.Context(), account); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Get handles GET /accounts-{kind}/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	account, ok := h.getOwn(c)
	if !ok {
		return
	}
	h.OK(c, account)
}

// List handles GET /accounts-{kind}.
func (h *AccountHandler) List(c *gin.Context) {
	filter, ok := parseDocumentFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), h.kind, filter)
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

// Update handles PUT /accounts-{kind}/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	account, ok := h.getOwn(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated := req.ApplyTo(account)
	if err := h.svc.Update(c.Request.Context(), updated); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Pay handles POST /accounts-{kind}/:id/pay.
func (h *AccountHandler) Pay(c *gin.Context) {
	account, ok := h.getOwn(c)
	if !ok {
		return
	}

	var req dto.PayAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	when := time.Time{}
	if req.PaymentDate != nil {
		when = req.PaymentDate.UTC()
	}

	paid, err := h.svc.Pay(c.Request.Context(), account.ID, when)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, paid)
}

// Cancel handles POST /accounts-{kind}/:id/cancel.
func (h *AccountHandler) Cancel(c *gin.Context) {
	account, ok := h.getOwn(c)
	if !ok {
		return
	}

	cancelled, err := h.svc.Cancel(c.Request.Context(), account.ID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cancelled)
}

// Delete handles DELETE /accounts-{kind}/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	account, ok := h.getOwn(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), account.ID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// getOwn loads the account and checks it belongs to this handler's kind,
// so a payable cannot be reached through the receivable routes.
func (h *AccountHandler) getOwn(c *gin.Context) (*accounts.Account, bool) {
	accountID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return nil, false
	}

	account, err := h.svc.GetByID(c.Request.Context(), accountID)
	if err != nil {
		h.Error(c, err)
		return nil, false
	}
	if account.Kind != h.kind {
		h.Error(c, apperror.NewNotFound("account", accountID.String()))
		return nil, false
	}
	return account, true
}
