package studentoffice_repository

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname StudentOfficeRepository --filename StudentOfficeRepository.go
type Repository interface {
	Create(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error)
	GetByID(ctx context.Context, id int64) (*model.StudentOffice, error)
	FindByIDAndDomain(ctx context.Context, id int64, domain string) (*model.StudentOffice, error)
	ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error)
	Update(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error)
}
