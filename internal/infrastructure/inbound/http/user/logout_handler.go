package user_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

type LogoutHandler struct {
	sessions SessionManager
	cookie   *middleware.SessionCookie
	log      ports.Logger
}

func NewLogoutHandler(sessions SessionManager, cookie *middleware.SessionCookie, log ports.Logger) *LogoutHandler {
	return &LogoutHandler{
		sessions: sessions,
		cookie:   cookie,
		log:      log,
	}
}

func (h *LogoutHandler) Logout(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	if err := h.sessions.Invalidate(c.Request.Context(), auth.Session.ID); err != nil {
		response.Error(c, h.log, err)
		return
	}

	h.cookie.Clear(c)
	c.Status(http.StatusNoContent)
}
