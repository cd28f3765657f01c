package memory

import (
	"context"
	"log/slog"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
)

type VoteRepository struct {
	db *DB
}

func (v *VoteRepository) Upsert(ctx context.Context, vote *model.Vote) error {
	v.db.mu.Lock()
	defer v.db.mu.Unlock()

	if _, ok := v.db.state.posts[vote.PostID]; !ok {
		v.db.log.Debug("Vote references missing post", slog.Int64("post_id", vote.PostID))
		return custom_errors.ErrDatabaseQuery
	}
	if _, ok := v.db.state.users[vote.UserID]; !ok {
		v.db.log.Debug("Vote references missing user", slog.Int64("user_id", vote.UserID))
		return custom_errors.ErrDatabaseQuery
	}

	v.db.state.votes[voteKey{userID: vote.UserID, postID: vote.PostID}] = vote.OptionIndex
	return nil
}

func (v *VoteRepository) Delete(ctx context.Context, userID, postID int64) error {
	v.db.mu.Lock()
	defer v.db.mu.Unlock()

	delete(v.db.state.votes, voteKey{userID: userID, postID: postID})
	return nil
}
