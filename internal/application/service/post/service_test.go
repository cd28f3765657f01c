package post_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	post_service "studentoffice-service/internal/application/service/post"
	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/logger"
	metrics "studentoffice-service/internal/infrastructure/outbound/metrics/prometheus"
	"studentoffice-service/internal/infrastructure/outbound/repository/memory"
)

func setupPostService(t *testing.T) (*post_service.PostService, *model.StudentOffice) {
	t.Helper()

	log := logger.New("test")
	db := memory.NewDB(log)
	office, err := db.StudentOfficeRepository().Create(context.Background(), &model.StudentOffice{SchoolName: "Poly", Domain: "poly.edu"})
	require.NoError(t, err)

	return post_service.NewPostService(db.PostRepository(), log, metrics.NewPrometheusMetricsProvider()), office
}

func TestPostService_CreatePost(t *testing.T) {
	svc, office := setupPostService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		dto         *model.CreatePostDTO
		wantTitle   string
		wantContent string
		wantOptions []string
		wantErr     error
	}{
		{
			name:        "plain post",
			dto:         &model.CreatePostDTO{Title: "Party", Content: "<p>Friday <b>night</b></p>"},
			wantTitle:   "Party",
			wantContent: "<p>Friday <b>night</b></p>",
		},
		{
			name:        "scripts are stripped",
			dto:         &model.CreatePostDTO{Title: "<i>Hi</i>", Content: `<p onclick="x()">ok</p><script>alert(1)</script>`},
			wantTitle:   "Hi",
			wantContent: "<p>ok</p>",
		},
		{
			name:        "poll",
			dto:         &model.CreatePostDTO{Title: "Vote", Content: "pick", PollOptions: []string{"pizza", "<b>sushi</b>"}},
			wantTitle:   "Vote",
			wantContent: "pick",
			wantOptions: []string{"pizza", "sushi"},
		},
		{
			name:        "entities in titles stay readable",
			dto:         &model.CreatePostDTO{Title: "Tom's & Jerry's", Content: "c"},
			wantTitle:   "Tom's & Jerry's",
			wantContent: "c",
		},
		{
			name:    "title made only of markup",
			dto:     &model.CreatePostDTO{Title: "<script>x</script>", Content: "c"},
			wantErr: custom_errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.dto.StudentOfficeID = office.ID

			post, err := svc.CreatePost(ctx, tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, post.Title)
			assert.Equal(t, tt.wantContent, post.Content)
			assert.Equal(t, tt.wantOptions, post.PollOptions)
			assert.Equal(t, office.ID, post.StudentOfficeID)
		})
	}
}

func TestPostService_UpdateAndDelete(t *testing.T) {
	svc, office := setupPostService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.CreatePostDTO{StudentOfficeID: office.ID, Title: "t", Content: "c"})
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, &model.UpdatePostDTO{ID: post.ID, StudentOfficeID: office.ID, Title: "new", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.NotNil(t, updated.UpdatedOn)

	_, err = svc.UpdatePost(ctx, &model.UpdatePostDTO{ID: post.ID, StudentOfficeID: office.ID + 1, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	assert.ErrorIs(t, svc.DeletePost(ctx, office.ID+1, post.ID), custom_errors.ErrPostNotFound)
	require.NoError(t, svc.DeletePost(ctx, office.ID, post.ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, office.ID, post.ID), custom_errors.ErrPostNotFound)
}
