package session_service

import (
	"context"
	"time"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname SessionService --filename SessionService.go
type Service interface {
	Create(ctx context.Context, userID int64) (*model.Session, error)
	Validate(ctx context.Context, sessionID string) (*model.AuthContext, error)
	Invalidate(ctx context.Context, sessionID string) error
	InvalidateUser(ctx context.Context, userID int64) error
	Lifetime() time.Duration
}
