package user_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

type UserGetter interface {
	Get(ctx context.Context, id int64) (*model.User, error)
}

type GetUserHandler struct {
	userService UserGetter
	log         ports.Logger
}

func NewGetUserHandler(userService UserGetter, log ports.Logger) *GetUserHandler {
	return &GetUserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *GetUserHandler) GetUser(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	user, err := h.userService.Get(c.Request.Context(), auth.User.ID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
