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

type UserRegistrar interface {
	Register(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
}

type RegisterHandler struct {
	userService UserRegistrar
	sessions    SessionManager
	cookie      *middleware.SessionCookie
	validate    *validator.Validate
	log         ports.Logger
}

func NewRegisterHandler(userService UserRegistrar, sessions SessionManager, cookie *middleware.SessionCookie, validate *validator.Validate, log ports.Logger) *RegisterHandler {
	return &RegisterHandler{
		userService: userService,
		sessions:    sessions,
		cookie:      cookie,
		validate:    validate,
		log:         log,
	}
}

type RegisterRequest struct {
	Login             string  `json:"login" validate:"required,min=3,max=30,username"`
	Email             string  `json:"email" validate:"required,email"`
	SchoolEmail       *string `json:"schoolEmail" validate:"omitempty,email"`
	FullName          string  `json:"fullName" validate:"required,min=1,latin_name"`
	Phone             string  `json:"phone" validate:"required,e164"`
	ProfilePictureURL *string `json:"profilePictureUrl" validate:"omitempty,uri"`
	Password          string  `json:"password" validate:"required,min=8"`
	StudentOfficeID   *int64  `json:"studentOfficeId" validate:"omitempty,gt=0"`
}

// Register replaces whatever session the caller had with one for the new
// account.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed register body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Register validation failed", slog.String("login", req.Login), slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	dropCurrentSession(c, h.sessions, h.log)

	user, err := h.userService.Register(c.Request.Context(), &model.CreateUserDTO{
		Login:             req.Login,
		Email:             req.Email,
		SchoolEmail:       req.SchoolEmail,
		FullName:          &req.FullName,
		Phone:             &req.Phone,
		ProfilePictureURL: req.ProfilePictureURL,
		Password:          req.Password,
		StudentOfficeID:   req.StudentOfficeID,
	})
	if err != nil {
		h.cookie.Clear(c)
		response.Error(c, h.log, err)
		return
	}

	if err := openSession(c, h.sessions, h.cookie, user); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
