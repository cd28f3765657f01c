package studentoffice_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
)

type StudentOfficeCreator interface {
	CreateStudentOffice(ctx context.Context, dto *model.CreateStudentOfficeDTO) (*model.StudentOffice, *model.User, error)
}

type CreateStudentOfficeHandler struct {
	officeService StudentOfficeCreator
	validate      *validator.Validate
	log           ports.Logger
}

func NewCreateStudentOfficeHandler(officeService StudentOfficeCreator, validate *validator.Validate, log ports.Logger) *CreateStudentOfficeHandler {
	return &CreateStudentOfficeHandler{
		officeService: officeService,
		validate:      validate,
		log:           log,
	}
}

type StudentOfficeBody struct {
	SchoolName        string  `json:"schoolName" validate:"required,min=3"`
	Description       *string `json:"description"`
	ProfilePictureURL *string `json:"profilePictureUrl" validate:"omitempty,uri"`
	CoverPictureURL   *string `json:"coverPictureUrl" validate:"omitempty,uri"`
	Domain            string  `json:"domain" validate:"required,domain"`
}

func (b StudentOfficeBody) toModel() model.StudentOffice {
	return model.StudentOffice{
		SchoolName:        b.SchoolName,
		Description:       b.Description,
		ProfilePictureURL: b.ProfilePictureURL,
		CoverPictureURL:   b.CoverPictureURL,
		Domain:            b.Domain,
	}
}

type AdminAccountBody struct {
	Login    string `json:"login" validate:"required,min=3,max=30,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type CreateStudentOfficeRequest struct {
	StudentOffice StudentOfficeBody `json:"studentOffice" validate:"required"`
	User          AdminAccountBody  `json:"user" validate:"required"`
}

type CreateStudentOfficeResponse struct {
	StudentOffice *model.StudentOffice `json:"studentOffice"`
	User          *model.User          `json:"user"`
}

func (h *CreateStudentOfficeHandler) CreateStudentOffice(c *gin.Context) {
	var req CreateStudentOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Malformed student office body", slog.String("error", err.Error()))
		response.Invalid(c, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Student office validation failed", slog.String("error", err.Error()))
		response.Invalid(c, validation.Properties(err))
		return
	}

	office, admin, err := h.officeService.CreateStudentOffice(c.Request.Context(), &model.CreateStudentOfficeDTO{
		Office: req.StudentOffice.toModel(),
		Admin: model.AdminAccountDTO{
			Login:    req.User.Login,
			Email:    req.User.Email,
			Password: req.User.Password,
		},
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, CreateStudentOfficeResponse{StudentOffice: office, User: admin})
}
