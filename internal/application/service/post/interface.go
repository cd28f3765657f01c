package post_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname PostService --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, studentOfficeID, id int64) error
}
