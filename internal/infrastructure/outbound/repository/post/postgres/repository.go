package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/outbound/repository/postgres/db"
)

const postColumns = `id, title, content, created_on, updated_on, student_office_id, poll_options`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) record(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedOn,
		&post.UpdatedOn,
		&post.StudentOfficeID,
		&post.PollOptions,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Int64("student_office_id", post.StudentOfficeID), slog.String("title", post.Title))

	args := pgx.NamedArgs{
		"title":             post.Title,
		"content":           post.Content,
		"student_office_id": post.StudentOfficeID,
		"poll_options":      post.PollOptions,
	}

	query := `
		INSERT INTO post (title, content, student_office_id, poll_options)
		VALUES (@title, @content, @student_office_id, @poll_options)
		RETURNING ` + postColumns

	created, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.record("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID), slog.Int64("student_office_id", created.StudentOfficeID))
	return created, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	return p.getByID(ctx, "post_get_by_id", `SELECT `+postColumns+` FROM post WHERE id = @id`, id)
}

func (p *PostRepository) LockByID(ctx context.Context, id int64) (*model.Post, error) {
	return p.getByID(ctx, "post_lock_by_id", `SELECT `+postColumns+` FROM post WHERE id = @id FOR SHARE`, id)
}

func (p *PostRepository) getByID(ctx context.Context, queryType, query string, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.record(queryType, start, false)
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.record(queryType, start, false)
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record(queryType, start, true)
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Updating post", slog.Int64("id", update.ID), slog.Int64("student_office_id", update.StudentOfficeID))

	args := pgx.NamedArgs{
		"id":                update.ID,
		"student_office_id": update.StudentOfficeID,
		"title":             update.Title,
		"content":           update.Content,
	}

	query := `
		UPDATE post
		SET title = @title, content = @content, updated_on = now()
		WHERE id = @id AND student_office_id = @student_office_id
		RETURNING ` + postColumns

	updated, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.record("post_update", start, false)
			p.log.Debug("Post not found for update", slog.Int64("id", update.ID))
			return nil, custom_errors.ErrPostNotFound
		}
		p.record("post_update", start, false)
		p.log.Error("Error updating post", slog.Int64("id", update.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_update", start, true)
	p.log.Debug("Successfully updated post", slog.Int64("id", updated.ID))
	return updated, nil
}

func (p *PostRepository) Delete(ctx context.Context, id, studentOfficeID int64) error {
	start := time.Now()
	p.log.Debug("Deleting post", slog.Int64("id", id), slog.Int64("student_office_id", studentOfficeID))

	args := pgx.NamedArgs{"id": id, "student_office_id": studentOfficeID}
	tag, err := p.db.Exec(ctx, `DELETE FROM post WHERE id = @id AND student_office_id = @student_office_id`, args)
	if err != nil {
		p.record("post_delete", start, false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		p.record("post_delete", start, false)
		p.log.Debug("Post not found for delete", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	p.record("post_delete", start, true)
	return nil
}

func (p *PostRepository) ListFeed(ctx context.Context, filter model.FeedFilter) ([]*model.PostWithVotes, error) {
	start := time.Now()
	p.log.Debug("Listing feed",
		slog.Int64("student_office_id", filter.StudentOfficeID),
		ports.OptionalInt64("cursor", filter.Cursor),
		slog.Int("limit", filter.Limit))

	args := pgx.NamedArgs{
		"student_office_id": filter.StudentOfficeID,
		"cursor":            filter.Cursor,
		"limit":             filter.Limit,
	}

	query := `
		SELECT ` + postColumns + `
		FROM post
		WHERE student_office_id = @student_office_id
		  AND (@cursor::bigint IS NULL OR id <= @cursor::bigint)
		ORDER BY id DESC
		LIMIT @limit`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.record("post_list_feed", start, false)
		p.log.Error("Error listing feed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.PostWithVotes, 0, filter.Limit)
	byID := make(map[int64]*model.PostWithVotes, filter.Limit)
	ids := make([]int64, 0, filter.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.record("post_list_feed", start, false)
			p.log.Error("Error scanning post during ListFeed", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		withVotes := &model.PostWithVotes{Post: *post}
		posts = append(posts, withVotes)
		byID[post.ID] = withVotes
		ids = append(ids, post.ID)
	}
	if err = rows.Err(); err != nil {
		p.record("post_list_feed", start, false)
		p.log.Error("Error iterating rows during ListFeed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	rows.Close()

	if len(ids) > 0 {
		if err := p.attachVotes(ctx, ids, byID); err != nil {
			p.record("post_list_feed", start, false)
			return nil, err
		}
	}

	p.record("post_list_feed", start, true)
	p.log.Debug("Successfully listed feed", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) attachVotes(ctx context.Context, ids []int64, byID map[int64]*model.PostWithVotes) error {
	rows, err := p.db.Query(ctx,
		`SELECT post_id, user_id, option_index FROM vote WHERE post_id = ANY(@post_ids)`,
		pgx.NamedArgs{"post_ids": ids})
	if err != nil {
		p.log.Error("Error loading votes for feed", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			vote   model.PostVote
		)
		if err := rows.Scan(&postID, &vote.UserID, &vote.OptionIndex); err != nil {
			p.log.Error("Error scanning vote", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseScan
		}
		if post, ok := byID[postID]; ok {
			post.Votes = append(post.Votes, vote)
		}
	}
	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating votes", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}
