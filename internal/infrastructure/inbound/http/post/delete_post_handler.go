package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, studentOfficeID, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	id, ok := validation.PathID(c.Param("id"))
	if !ok {
		response.Invalid(c, []string{"/id"})
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), *auth.User.StudentOfficeID, id); err != nil {
		h.log.Debug("Error deleting post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
