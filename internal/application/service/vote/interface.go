package vote_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --structname VoteService --filename VoteService.go
type Service interface {
	CastVote(ctx context.Context, vote *model.CastVoteDTO) error
	RetractVote(ctx context.Context, userID, postID int64) error
}
