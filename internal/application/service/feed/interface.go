package feed_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname FeedService --filename FeedService.go
type Service interface {
	GetPosts(ctx context.Context, query model.FeedQuery) (*model.FeedPage, error)
}
