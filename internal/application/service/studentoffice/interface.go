package studentoffice_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname StudentOfficeService --filename StudentOfficeService.go
type Service interface {
	CreateStudentOffice(ctx context.Context, dto *model.CreateStudentOfficeDTO) (*model.StudentOffice, *model.User, error)
	GetStudentOffice(ctx context.Context, id int64) (*model.StudentOffice, error)
	ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error)
	UpdateStudentOffice(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error)
}
