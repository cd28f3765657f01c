package session_store

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Store --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname SessionStore --filename SessionStore.go
type Store interface {
	Save(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
}
