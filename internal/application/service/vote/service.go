package vote_service

import (
	"context"
	"errors"
	"log/slog"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	vote_repository "studentoffice-service/internal/domain/ports/output/vote"
)

const voteObject = "vote"

type VoteService struct {
	uow      ports.UnitOfWork
	voteRepo vote_repository.Repository
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewVoteService(uow ports.UnitOfWork, voteRepo vote_repository.Repository, log ports.Logger, metrics ports.MetricsProvider) *VoteService {
	return &VoteService{
		uow:      uow,
		voteRepo: voteRepo,
		log:      log,
		metrics:  metrics,
	}
}

// CastVote records or replaces the caller's choice on a poll. The post is
// locked for the duration so it cannot disappear between the option check
// and the write.
func (s *VoteService) CastVote(ctx context.Context, vote *model.CastVoteDTO) (err error) {
	s.log.Debug("Casting vote",
		slog.Int64("user_id", vote.UserID),
		slog.Int64("post_id", vote.PostID),
		slog.Int("option_index", vote.OptionIndex))

	defer func() {
		s.metrics.IncrementVoteOperations("cast", err == nil)
	}()

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	post, err := tx.PostRepository().LockByID(ctx, vote.PostID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.NewNotFoundDataError(voteObject, "/postId")
		}
		return err
	}
	if post.StudentOfficeID != vote.StudentOfficeID {
		s.log.Debug("Vote on a post of another student office",
			slog.Int64("post_id", post.ID),
			slog.Int64("student_office_id", vote.StudentOfficeID))
		return custom_errors.NewNotFoundDataError(voteObject, "/postId")
	}
	if !post.IsPoll() || vote.OptionIndex < 0 || vote.OptionIndex >= len(post.PollOptions) {
		s.log.Debug("Vote option does not match the post",
			slog.Int64("post_id", post.ID),
			slog.Int("options", len(post.PollOptions)),
			slog.Int("option_index", vote.OptionIndex))
		return custom_errors.NewMismatchDataError(voteObject, "/postId", "/optionIndex")
	}

	if err := tx.VoteRepository().Upsert(ctx, &model.Vote{
		UserID:      vote.UserID,
		PostID:      vote.PostID,
		OptionIndex: vote.OptionIndex,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}

// RetractVote is idempotent: retracting a vote that does not exist succeeds.
func (s *VoteService) RetractVote(ctx context.Context, userID, postID int64) error {
	if err := s.voteRepo.Delete(ctx, userID, postID); err != nil {
		s.metrics.IncrementVoteOperations("retract", false)
		return err
	}

	s.metrics.IncrementVoteOperations("retract", true)
	s.log.Debug("Vote retracted", slog.Int64("user_id", userID), slog.Int64("post_id", postID))
	return nil
}
