package post_http

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

type PostUpdater interface {
	UpdatePost(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required"`
}

func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	id, ok := validation.PathID(c.Param("id"))
	if !ok {
		response.Invalid(c, []string{"/id"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed update post body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Update post validation failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), &model.UpdatePostDTO{
		ID:              id,
		StudentOfficeID: *auth.User.StudentOfficeID,
		Title:           req.Title,
		Content:         req.Content,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
