package menuitem_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

type MenuItemLister interface {
	ListMenuItems(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error)
}

type ListMenuItemsHandler struct {
	menuItemService MenuItemLister
	log             ports.Logger
}

func NewListMenuItemsHandler(menuItemService MenuItemLister, log ports.Logger) *ListMenuItemsHandler {
	return &ListMenuItemsHandler{
		menuItemService: menuItemService,
		log:             log,
	}
}

func (h *ListMenuItemsHandler) ListMenuItems(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	items, err := h.menuItemService.ListMenuItems(c.Request.Context(), *auth.User.StudentOfficeID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
