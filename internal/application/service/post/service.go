package post_service

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	post_repository "studentoffice-service/internal/domain/ports/output/post"
)

type PostService struct {
	postRepo post_repository.Repository
	strict   *bluemonday.Policy
	ugc      *bluemonday.Policy
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostService(postRepo post_repository.Repository, log ports.Logger, metrics ports.MetricsProvider) *PostService {
	return &PostService{
		postRepo: postRepo,
		strict:   bluemonday.StrictPolicy(),
		ugc:      bluemonday.UGCPolicy(),
		log:      log,
		metrics:  metrics,
	}
}

// plainText strips every tag; the result is stored as text, not markup.
func (s *PostService) plainText(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(value)))
}

// sanitize strips markup from titles and poll options and keeps only safe
// formatting in content. A title left empty by sanitizing is rejected.
func (s *PostService) sanitize(title, content string, pollOptions []string) (string, string, []string, error) {
	title = s.plainText(title)
	if title == "" {
		return "", "", nil, custom_errors.ErrInvalidInput
	}
	content = s.ugc.Sanitize(content)

	if pollOptions == nil {
		return title, content, nil, nil
	}
	options := make([]string, 0, len(pollOptions))
	for _, option := range pollOptions {
		option = s.plainText(option)
		if option == "" {
			return "", "", nil, custom_errors.ErrInvalidInput
		}
		options = append(options, option)
	}
	return title, content, options, nil
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	s.log.Debug("Creating post", slog.Int64("student_office_id", post.StudentOfficeID), slog.Bool("poll", post.PollOptions != nil))

	title, content, options, err := s.sanitize(post.Title, post.Content, post.PollOptions)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Debug("Post rejected after sanitizing", slog.Int64("student_office_id", post.StudentOfficeID))
		return nil, err
	}

	created, err := s.postRepo.Create(ctx, &model.CreatePostDTO{
		StudentOfficeID: post.StudentOfficeID,
		Title:           title,
		Content:         content,
		PollOptions:     options,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.Int64("post_id", created.ID), slog.Int64("student_office_id", created.StudentOfficeID))
	return created, nil
}

func (s *PostService) UpdatePost(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error) {
	title, content, _, err := s.sanitize(update.Title, update.Content, nil)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	updated, err := s.postRepo.Update(ctx, &model.UpdatePostDTO{
		ID:              update.ID,
		StudentOfficeID: update.StudentOfficeID,
		Title:           title,
		Content:         content,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementPostOperations("update", true)
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, studentOfficeID, id int64) error {
	if err := s.postRepo.Delete(ctx, id, studentOfficeID); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.Int64("post_id", id), slog.Int64("student_office_id", studentOfficeID))
	return nil
}
