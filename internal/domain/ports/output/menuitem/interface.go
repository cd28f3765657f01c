package menuitem_repository

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname MenuItemRepository --filename MenuItemRepository.go
type Repository interface {
	ListByStudentOffice(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id, studentOfficeID int64) error
}
