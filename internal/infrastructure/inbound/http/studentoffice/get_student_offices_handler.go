package studentoffice_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

type StudentOfficeReader interface {
	GetStudentOffice(ctx context.Context, id int64) (*model.StudentOffice, error)
	ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error)
}

type GetStudentOfficesHandler struct {
	officeService StudentOfficeReader
	validate      *validator.Validate
	log           ports.Logger
}

func NewGetStudentOfficesHandler(officeService StudentOfficeReader, validate *validator.Validate, log ports.Logger) *GetStudentOfficesHandler {
	return &GetStudentOfficesHandler{
		officeService: officeService,
		validate:      validate,
		log:           log,
	}
}

// GetStudentOffices lists the offices of a domain for anyone. Without a
// domain it returns the caller's own office and needs a session.
func (h *GetStudentOfficesHandler) GetStudentOffices(c *gin.Context) {
	if domain := c.Query("domain"); domain != "" {
		if err := h.validate.Var(domain, "min=3"); err != nil {
			response.Invalid(c, []string{"/domain"})
			return
		}

		offices, err := h.officeService.ListByDomain(c.Request.Context(), domain)
		if err != nil {
			response.Error(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, offices)
		return
	}

	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	if auth.User.StudentOfficeID == nil {
		response.Message(c, http.StatusNotFound, "student office not found")
		return
	}

	office, err := h.officeService.GetStudentOffice(c.Request.Context(), *auth.User.StudentOfficeID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, office)
}
