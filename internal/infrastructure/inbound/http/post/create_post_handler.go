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

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Content     string   `json:"content" validate:"required"`
	PollOptions []string `json:"pollOptions" validate:"omitempty,dive,min=1,max=255"`
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed create post body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Create post validation failed", slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		StudentOfficeID: *auth.User.StudentOfficeID,
		Title:           req.Title,
		Content:         req.Content,
		PollOptions:     req.PollOptions,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}
