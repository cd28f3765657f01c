package user_http

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

type UserUpdater interface {
	Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error)
}

type UpdateUserHandler struct {
	userService UserUpdater
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdateUserHandler(userService UserUpdater, validate *validator.Validate, log ports.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type UpdateUserRequest struct {
	Login             string  `json:"login" validate:"required,min=3,max=30,username"`
	Email             string  `json:"email" validate:"required,email"`
	SchoolEmail       *string `json:"schoolEmail" validate:"omitempty,email"`
	FullName          string  `json:"fullName" validate:"required,min=1,latin_name"`
	Phone             string  `json:"phone" validate:"required,e164"`
	ProfilePictureURL *string `json:"profilePictureUrl" validate:"omitempty,uri"`
	StudentOfficeID   *int64  `json:"studentOfficeId" validate:"omitempty,gt=0"`
}

func (h *UpdateUserHandler) UpdateUser(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed update user body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Update user validation failed", slog.Int64("user_id", auth.User.ID), slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), &model.UpdateUserDTO{
		ID:                auth.User.ID,
		Login:             req.Login,
		Email:             req.Email,
		SchoolEmail:       req.SchoolEmail,
		FullName:          &req.FullName,
		Phone:             &req.Phone,
		ProfilePictureURL: req.ProfilePictureURL,
		StudentOfficeID:   req.StudentOfficeID,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
