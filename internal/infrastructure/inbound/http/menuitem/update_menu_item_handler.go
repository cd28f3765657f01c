package menuitem_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
)

type MenuItemUpdater interface {
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
}

type UpdateMenuItemHandler struct {
	menuItemService MenuItemUpdater
	validate        *validator.Validate
	log             ports.Logger
}

func NewUpdateMenuItemHandler(menuItemService MenuItemUpdater, validate *validator.Validate, log ports.Logger) *UpdateMenuItemHandler {
	return &UpdateMenuItemHandler{
		menuItemService: menuItemService,
		validate:        validate,
		log:             log,
	}
}

func (h *UpdateMenuItemHandler) UpdateMenuItem(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	id, ok := validation.PathID(c.Param("id"))
	if !ok {
		response.Invalid(c, []string{"/id"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed menu item body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(c, validation.Properties(err))
		return
	}

	item, err := h.menuItemService.UpdateMenuItem(c.Request.Context(), req.toModel(id, *auth.User.StudentOfficeID))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
