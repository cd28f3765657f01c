package vote_http

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

type VoteRetractor interface {
	RetractVote(ctx context.Context, userID, postID int64) error
}

type RetractVoteHandler struct {
	voteService VoteRetractor
	validate    *validator.Validate
	log         ports.Logger
}

func NewRetractVoteHandler(voteService VoteRetractor, validate *validator.Validate, log ports.Logger) *RetractVoteHandler {
	return &RetractVoteHandler{
		voteService: voteService,
		validate:    validate,
		log:         log,
	}
}

type RetractVoteRequest struct {
	PostID int64 `json:"postId" validate:"required,gt=0"`
}

func (h *RetractVoteHandler) RetractVote(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req RetractVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed retract vote body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(c, validation.Properties(err))
		return
	}

	if err := h.voteService.RetractVote(c.Request.Context(), auth.User.ID, req.PostID); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
