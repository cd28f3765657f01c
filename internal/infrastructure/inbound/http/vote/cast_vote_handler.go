package vote_http

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

type VoteCaster interface {
	CastVote(ctx context.Context, vote *model.CastVoteDTO) error
}

type CastVoteHandler struct {
	voteService VoteCaster
	validate    *validator.Validate
	log         ports.Logger
}

func NewCastVoteHandler(voteService VoteCaster, validate *validator.Validate, log ports.Logger) *CastVoteHandler {
	return &CastVoteHandler{
		voteService: voteService,
		validate:    validate,
		log:         log,
	}
}

type CastVoteRequest struct {
	PostID      int64 `json:"postId" validate:"required,gt=0"`
	OptionIndex *int  `json:"optionIndex" validate:"required,min=0"`
}

func (h *CastVoteHandler) CastVote(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed vote body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Vote validation failed", slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	err := h.voteService.CastVote(c.Request.Context(), &model.CastVoteDTO{
		UserID:          auth.User.ID,
		StudentOfficeID: *auth.User.StudentOfficeID,
		PostID:          req.PostID,
		OptionIndex:     *req.OptionIndex,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
