package menuitem_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname MenuItemService --filename MenuItemService.go
type Service interface {
	ListMenuItems(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, studentOfficeID, id int64) error
}
