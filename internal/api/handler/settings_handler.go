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

type SettingsHandler struct {
	ownerService *service.OwnerService
}

func NewSettingsHandler(ownerService *service.OwnerService) *SettingsHandler {
	return &SettingsHandler{
		ownerService: ownerService,
	}
}

// Show handles GET /settings
func (h *SettingsHandler) Show(c *gin.Context) {
	web.Render(c, http.StatusOK, web.PageSettings, nil)
}

// Update handles POST /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var form dto.SettingsForm
	if err := c.ShouldBind(&form); err != nil {
		web.RenderError(c, http.StatusBadRequest)
		return
	}

	err := h.ownerService.UpdateName(c.Request.Context(), form.Name)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		session.Redirect(c, "/settings", MsgInvalidInput)
	case err != nil:
		_ = c.Error(err)
	default:
		session.Redirect(c, "/", MsgSettingsUpdated)
	}
}
