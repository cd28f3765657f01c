package feed_service

import (
	"context"
	"fmt"
	"log/slog"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	post_repository "studentoffice-service/internal/domain/ports/output/post"
	"studentoffice-service/internal/pagination"
)

type FeedService struct {
	postRepo       post_repository.Repository
	paginationSize int
	log            ports.Logger
	metrics        ports.MetricsProvider
}

func NewFeedService(postRepo post_repository.Repository, paginationSize int, log ports.Logger, metrics ports.MetricsProvider) (*FeedService, error) {
	if !pagination.ValidPageSize(paginationSize) {
		return nil, fmt.Errorf("%w: pagination size %d outside [%d, %d]",
			custom_errors.ErrInvalidInput, paginationSize, pagination.MinPageSize, pagination.MaxPageSize)
	}
	return &FeedService{
		postRepo:       postRepo,
		paginationSize: paginationSize,
		log:            log,
		metrics:        metrics,
	}, nil
}

func (s *FeedService) GetPosts(ctx context.Context, query model.FeedQuery) (*model.FeedPage, error) {
	s.log.Debug("Getting feed page",
		slog.Int64("student_office_id", query.StudentOfficeID),
		slog.Int64("caller_id", query.CallerUserID),
		ports.OptionalInt64("cursor", query.Cursor))

	rows, err := s.postRepo.ListFeed(ctx, model.FeedFilter{
		StudentOfficeID: query.StudentOfficeID,
		Cursor:          query.Cursor,
		Limit:           pagination.LimitPlusOne(s.paginationSize),
	})
	if err != nil {
		s.metrics.IncrementPostOperations("feed", false)
		s.log.Error("Failed to list feed", slog.Int64("student_office_id", query.StudentOfficeID), slog.String("error", err.Error()))
		return nil, err
	}

	page := BuildFeedPage(rows, s.paginationSize, query.CallerUserID)

	s.metrics.IncrementPostOperations("feed", true)
	s.metrics.ObserveFeedPageSize(len(page.Posts))
	s.log.Debug("Feed page built",
		slog.Int("count", len(page.Posts)),
		slog.Bool("has_next_page", page.Pagination.HasNextPage()))
	return page, nil
}

// BuildFeedPage turns rows fetched with one probe row past pageSize into the
// outward page. Raw votes never leave this function; only tallies and the
// caller's own choice do.
func BuildFeedPage(rows []*model.PostWithVotes, pageSize int, callerUserID int64) *model.FeedPage {
	kept, next := pagination.TrimProbe(rows, pageSize, func(row *model.PostWithVotes) int64 { return row.ID })

	views := make([]model.PostView, 0, len(kept))
	for _, row := range kept {
		views = append(views, toView(row, callerUserID))
	}

	return &model.FeedPage{Posts: views, Pagination: next}
}

func toView(row *model.PostWithVotes, callerUserID int64) model.PostView {
	view := model.PostView{Post: row.Post}
	if !row.IsPoll() {
		return view
	}

	view.Votes = make([]int, len(row.PollOptions))
	for _, vote := range row.Votes {
		if vote.OptionIndex < 0 || vote.OptionIndex >= len(view.Votes) {
			continue
		}
		view.Votes[vote.OptionIndex]++
		if vote.UserID == callerUserID {
			option := vote.OptionIndex
			view.UserVoteOptionIndex = &option
		}
	}
	return view
}
