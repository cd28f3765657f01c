package vote_repository

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --structname VoteRepository --filename VoteRepository.go
type Repository interface {
	Upsert(ctx context.Context, vote *model.Vote) error
	Delete(ctx context.Context, userID, postID int64) error
}
