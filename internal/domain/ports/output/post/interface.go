package post_repository

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname PostRepository --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// LockByID reads a post and keeps it from being deleted until the
	// surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id, studentOfficeID int64) error
	// ListFeed returns posts newest first, each with all of its votes.
	ListFeed(ctx context.Context, filter model.FeedFilter) ([]*model.PostWithVotes, error)
}
