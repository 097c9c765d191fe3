package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/api/dto"
	"github.com/martijn/watchlist/internal/api/session"
	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	web.Render(c, http.StatusOK, web.PageLogin, nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		session.Redirect(c, "/login", MsgInvalidInput)
		return
	}

	owner, err := h.authService.Authenticate(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		session.Redirect(c, "/login", MsgInvalidInput)
	case errors.Is(err, domain.ErrInvalidCredentials):
		session.Redirect(c, "/login", MsgInvalidCredentials)
	case err != nil:
		_ = c.Error(err)
	default:
		session.FromContext(c).Login(owner.ID)
		session.Redirect(c, "/", MsgLoginSuccess)
	}
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session.FromContext(c).Logout()
	session.Redirect(c, "/", MsgGoodbye)
}
