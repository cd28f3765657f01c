package vote_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/outbound/repository/postgres/db"
)

type VoteRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewVoteRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *VoteRepository {
	return &VoteRepository{db: db, log: log, metrics: metrics}
}

func (r *VoteRepository) Upsert(ctx context.Context, vote *model.Vote) error {
	start := time.Now()
	r.log.Debug("Casting vote",
		slog.Int64("user_id", vote.UserID),
		slog.Int64("post_id", vote.PostID),
		slog.Int("option_index", vote.OptionIndex))

	args := pgx.NamedArgs{
		"user_id":      vote.UserID,
		"post_id":      vote.PostID,
		"option_index": vote.OptionIndex,
	}

	query := `
		INSERT INTO vote (user_id, post_id, option_index)
		VALUES (@user_id, @post_id, @option_index)
		ON CONFLICT (user_id, post_id) DO UPDATE SET option_index = EXCLUDED.option_index`

	if _, err := r.db.Exec(ctx, query, args); err != nil {
		r.metrics.IncrementDatabaseQueries("vote_upsert", false)
		r.metrics.RecordDatabaseQueryDuration("vote_upsert", time.Since(start))
		r.log.Error("Error casting vote", slog.Int64("post_id", vote.PostID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("vote_upsert", true)
	r.metrics.RecordDatabaseQueryDuration("vote_upsert", time.Since(start))
	return nil
}

// Delete is idempotent: retracting a vote that was never cast succeeds.
func (r *VoteRepository) Delete(ctx context.Context, userID, postID int64) error {
	start := time.Now()
	r.log.Debug("Retracting vote", slog.Int64("user_id", userID), slog.Int64("post_id", postID))

	args := pgx.NamedArgs{"user_id": userID, "post_id": postID}
	if _, err := r.db.Exec(ctx, `DELETE FROM vote WHERE user_id = @user_id AND post_id = @post_id`, args); err != nil {
		r.metrics.IncrementDatabaseQueries("vote_delete", false)
		r.metrics.RecordDatabaseQueryDuration("vote_delete", time.Since(start))
		r.log.Error("Error retracting vote", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("vote_delete", true)
	r.metrics.RecordDatabaseQueryDuration("vote_delete", time.Since(start))
	return nil
}
