package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
)

type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type UpdatePasswordHandler struct {
	userService PasswordUpdater
	sessions    SessionManager
	cookie      *middleware.SessionCookie
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdatePasswordHandler(userService PasswordUpdater, sessions SessionManager, cookie *middleware.SessionCookie, validate *validator.Validate, log ports.Logger) *UpdatePasswordHandler {
	return &UpdatePasswordHandler{
		userService: userService,
		sessions:    sessions,
		cookie:      cookie,
		validate:    validate,
		log:         log,
	}
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UpdatePassword signs the user out everywhere and issues a new session for
// the current client.
func (h *UpdatePasswordHandler) UpdatePassword(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed password body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(c, validation.Properties(err))
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), auth.User.ID, req.Password); err != nil {
		response.Error(c, h.log, err)
		return
	}

	if err := h.sessions.InvalidateUser(c.Request.Context(), auth.User.ID); err != nil {
		h.log.Warn("Failed to invalidate sessions after password change", slog.Int64("user_id", auth.User.ID), slog.String("error", err.Error()))
	}
	if err := openSession(c, h.sessions, h.cookie, auth.User); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
