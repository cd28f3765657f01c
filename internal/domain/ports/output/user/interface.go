package user_repository

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname UserRepository --filename UserRepository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// FindByLogin matches the value against login, email and phone.
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	// FindConflicting returns every user sharing login, email, phone or school
	// email with the candidate, skipping excludeID when set.
	FindConflicting(ctx context.Context, fields model.UniqueFields, excludeID *int64) ([]*model.User, error)
	Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
