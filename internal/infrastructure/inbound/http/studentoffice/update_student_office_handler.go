package studentoffice_http

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

type StudentOfficeUpdater interface {
	UpdateStudentOffice(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error)
}

type UpdateStudentOfficeHandler struct {
	officeService StudentOfficeUpdater
	validate      *validator.Validate
	log           ports.Logger
}

func NewUpdateStudentOfficeHandler(officeService StudentOfficeUpdater, validate *validator.Validate, log ports.Logger) *UpdateStudentOfficeHandler {
	return &UpdateStudentOfficeHandler{
		officeService: officeService,
		validate:      validate,
		log:           log,
	}
}

func (h *UpdateStudentOfficeHandler) UpdateStudentOffice(c *gin.Context) {
	auth, _ := middleware.AuthFromContext(c)

	var req StudentOfficeBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed student office body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(c, validation.Properties(err))
		return
	}

	office := req.toModel()
	office.ID = *auth.User.StudentOfficeID

	updated, err := h.officeService.UpdateStudentOffice(c.Request.Context(), &office)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
