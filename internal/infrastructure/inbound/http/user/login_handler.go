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

type UserAuthenticator interface {
	Login(ctx context.Context, credentials model.Credentials) (*model.User, error)
}

type LoginHandler struct {
	userService UserAuthenticator
	sessions    SessionManager
	cookie      *middleware.SessionCookie
	validate    *validator.Validate
	log         ports.Logger
}

func NewLoginHandler(userService UserAuthenticator, sessions SessionManager, cookie *middleware.SessionCookie, validate *validator.Validate, log ports.Logger) *LoginHandler {
	return &LoginHandler{
		userService: userService,
		sessions:    sessions,
		cookie:      cookie,
		validate:    validate,
		log:         log,
	}
}

// The login field accepts a login, an email or a phone number.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=320"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed login body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(c, validation.Properties(err))
		return
	}

	dropCurrentSession(c, h.sessions, h.log)

	user, err := h.userService.Login(c.Request.Context(), model.Credentials{Login: req.Login, Password: req.Password})
	if err != nil {
		h.cookie.Clear(c)
		response.Error(c, h.log, err)
		return
	}

	if err := openSession(c, h.sessions, h.cookie, user); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
