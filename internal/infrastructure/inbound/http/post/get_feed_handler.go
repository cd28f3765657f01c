package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/pagination"
)

type FeedGetter interface {
	GetPosts(ctx context.Context, query model.FeedQuery) (*model.FeedPage, error)
}

type GetFeedHandler struct {
	feedService FeedGetter
	log         ports.Logger
}

func NewGetFeedHandler(feedService FeedGetter, log ports.Logger) *GetFeedHandler {
	return &GetFeedHandler{
		feedService: feedService,
		log:         log,
	}
}

func (h *GetFeedHandler) GetFeed(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	cursor, err := pagination.ParseCursor(c.Query("cursor"))
	if err != nil {
		h.log.Debug("Invalid feed cursor", slog.String("cursor", c.Query("cursor")))
		response.Invalid(c, []string{"/cursor"})
		return
	}

	page, err := h.feedService.GetPosts(c.Request.Context(), model.FeedQuery{
		StudentOfficeID: *auth.User.StudentOfficeID,
		CallerUserID:    auth.User.ID,
		Cursor:          cursor,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
