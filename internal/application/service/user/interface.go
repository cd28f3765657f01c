package user_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname UserService --filename UserService.go
type Service interface {
	Register(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
	Login(ctx context.Context, credentials model.Credentials) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
	Delete(ctx context.Context, id int64) error
}
