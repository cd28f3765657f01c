package menuitem_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
)

type MenuItemDeleter interface {
	DeleteMenuItem(ctx context.Context, studentOfficeID, id int64) error
}

type DeleteMenuItemHandler struct {
	menuItemService MenuItemDeleter
	log             ports.Logger
}

func NewDeleteMenuItemHandler(menuItemService MenuItemDeleter, log ports.Logger) *DeleteMenuItemHandler {
	return &DeleteMenuItemHandler{
		menuItemService: menuItemService,
		log:             log,
	}
}

func (h *DeleteMenuItemHandler) DeleteMenuItem(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	id, ok := validation.PathID(c.Param("id"))
	if !ok {
		response.Invalid(c, []string{"/id"})
		return
	}

	if err := h.menuItemService.DeleteMenuItem(c.Request.Context(), *auth.User.StudentOfficeID, id); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
