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

type MenuItemCreator interface {
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
}

type CreateMenuItemHandler struct {
	menuItemService MenuItemCreator
	validate        *validator.Validate
	log             ports.Logger
}

func NewCreateMenuItemHandler(menuItemService MenuItemCreator, validate *validator.Validate, log ports.Logger) *CreateMenuItemHandler {
	return &CreateMenuItemHandler{
		menuItemService: menuItemService,
		validate:        validate,
		log:             log,
	}
}

func (h *CreateMenuItemHandler) CreateMenuItem(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

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

	item, err := h.menuItemService.CreateMenuItem(c.Request.Context(), req.toModel(0, *auth.User.StudentOfficeID))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}
