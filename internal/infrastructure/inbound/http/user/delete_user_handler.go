package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

type DeleteUserHandler struct {
	userService UserDeleter
	sessions    SessionManager
	cookie      *middleware.SessionCookie
	log         ports.Logger
}

func NewDeleteUserHandler(userService UserDeleter, sessions SessionManager, cookie *middleware.SessionCookie, log ports.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{
		userService: userService,
		sessions:    sessions,
		cookie:      cookie,
		log:         log,
	}
}

func (h *DeleteUserHandler) DeleteUser(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	if err := h.userService.Delete(c.Request.Context(), auth.User.ID); err != nil {
		response.Error(c, h.log, err)
		return
	}

	if err := h.sessions.InvalidateUser(c.Request.Context(), auth.User.ID); err != nil {
		h.log.Warn("Failed to drop sessions of deleted user", slog.Int64("user_id", auth.User.ID), slog.String("error", err.Error()))
	}
	h.cookie.Clear(c)
	c.Status(http.StatusNoContent)
}
