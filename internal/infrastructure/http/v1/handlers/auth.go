package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	appctx "esteticar/internal/core/context"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/auth"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves login, refresh, logout and registration.
type AuthHandler struct {
	*BaseHandler
	svc *auth.Service
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(base *BaseHandler, svc *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, svc: svc}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, pair)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, pair)
}

// Logout handles POST /auth/logout. The session comes from the access
// token, so logout needs no body.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := appctx.GetUser(c.Request.Context())
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	sessionID, err := id.Parse(user.SessionID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid session"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), sessionID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "logged out")
}

// Register handles POST /auth/register. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Email, req.Name, req.Password, req.Roles)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:     user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Roles:  user.Roles,
		Active: user.Active,
	})
}
