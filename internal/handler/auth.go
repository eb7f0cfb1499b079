package handler

import (
	"net/http"

	"github.com/Odenfis/taytaApp/internal/apierror"
	"github.com/Odenfis/taytaApp/internal/config"
	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/middleware"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login POST /api/login — verifies credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sessionID, _, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.Fail(err.Error()))
		return
	}

	maxAge := h.cfg.SessionTTLHours * 3600
	c.SetCookie(h.cfg.SessionCookie, sessionID, maxAge, "/", "", h.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, apierror.OK())
}

// UserInfo GET /api/user-info — returns the session principal.
func (h *AuthHandler) UserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetPrincipal(c))
}

// Logout GET /api/logout — destroys the session and expires the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := c.GetString(middleware.SessionIDKey); id != "" {
		if err := h.svc.Logout(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.Fail(err.Error()))
			return
		}
	}
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", h.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, apierror.OK())
}
