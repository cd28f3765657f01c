package user_http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
)

type SessionManager interface {
	Create(ctx context.Context, userID int64) (*model.Session, error)
	Invalidate(ctx context.Context, sessionID string) error
	InvalidateUser(ctx context.Context, userID int64) error
}

// dropCurrentSession ends the session the request arrived with, if any.
func dropCurrentSession(c *gin.Context, sessions SessionManager, log ports.Logger) {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return
	}
	if err := sessions.Invalidate(c.Request.Context(), auth.Session.ID); err != nil {
		log.Warn("Failed to invalidate previous session", slog.Int64("user_id", auth.User.ID), slog.String("error", err.Error()))
	}
}

// openSession creates a session for user and sends its cookie.
func openSession(c *gin.Context, sessions SessionManager, cookie *middleware.SessionCookie, user *model.User) error {
	session, err := sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		return err
	}
	if err := cookie.Set(c, session); err != nil {
		return err
	}
	middleware.SetAuthContext(c, &model.AuthContext{User: user, Session: session})
	return nil
}
