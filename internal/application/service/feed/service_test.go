package feed_service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feed_service "studentoffice-service/internal/application/service/feed"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/logger"
	metrics "studentoffice-service/internal/infrastructure/outbound/metrics/prometheus"
	"studentoffice-service/internal/infrastructure/outbound/repository/memory"
	"studentoffice-service/internal/pagination"
)

type fixture struct {
	db     *memory.DB
	office *model.StudentOffice
	ctx    context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	base := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	db := memory.NewDB(logger.New("test")).WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	ctx := context.Background()
	office, err := db.StudentOfficeRepository().Create(ctx, &model.StudentOffice{SchoolName: "Polytech", Domain: "poly.edu"})
	require.NoError(t, err)

	return &fixture{db: db, office: office, ctx: ctx}
}

func (f *fixture) service(t *testing.T, pageSize int) *feed_service.FeedService {
	t.Helper()
	svc, err := feed_service.NewFeedService(f.db.PostRepository(), pageSize, logger.New("test"), metrics.NewPrometheusMetricsProvider())
	require.NoError(t, err)
	return svc
}

func (f *fixture) post(t *testing.T, pollOptions []string) *model.Post {
	t.Helper()
	post, err := f.db.PostRepository().Create(f.ctx, &model.CreatePostDTO{
		StudentOfficeID: f.office.ID,
		Title:           "title",
		Content:         "content",
		PollOptions:     pollOptions,
	})
	require.NoError(t, err)
	return post
}

func (f *fixture) user(t *testing.T, login string) *model.User {
	t.Helper()
	user, err := f.db.UserRepository().Create(f.ctx, &model.User{Login: login, Email: login + "@mail.io", PasswordHash: "h"})
	require.NoError(t, err)
	return user
}

func (f *fixture) vote(t *testing.T, user *model.User, post *model.Post, option int) {
	t.Helper()
	require.NoError(t, f.db.VoteRepository().Upsert(f.ctx, &model.Vote{UserID: user.ID, PostID: post.ID, OptionIndex: option}))
}

func TestNewFeedService_RejectsPageSize(t *testing.T) {
	f := newFixture(t)

	for _, size := range []int{0, 1, 101} {
		_, err := feed_service.NewFeedService(f.db.PostRepository(), size, logger.New("test"), metrics.NewPrometheusMetricsProvider())
		assert.Error(t, err, "size %d", size)
	}
}

func TestGetPosts_WalksEveryPostOnce(t *testing.T) {
	tests := []struct {
		name     string
		posts    int
		pageSize int
	}{
		{name: "exact multiple", posts: 6, pageSize: 2},
		{name: "remainder", posts: 7, pageSize: 3},
		{name: "single page", posts: 2, pageSize: 5},
		{name: "page size equals count", posts: 4, pageSize: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for i := 0; i < tt.posts; i++ {
				f.post(t, nil)
			}
			svc := f.service(t, tt.pageSize)

			seen := make(map[int64]bool)
			var last *time.Time
			var cursor *int64
			pages := 0
			for {
				page, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, Cursor: cursor})
				require.NoError(t, err)
				pages++
				require.LessOrEqual(t, len(page.Posts), tt.pageSize)

				for _, view := range page.Posts {
					assert.False(t, seen[view.ID], "post %d returned twice", view.ID)
					seen[view.ID] = true
					if last != nil {
						assert.False(t, view.CreatedOn.After(*last))
					}
					created := view.CreatedOn
					last = &created
				}

				next, ok := pagination.NextCursor(page.Pagination)
				if !ok {
					break
				}
				cursor = &next
				require.Less(t, pages, tt.posts+2)
			}

			assert.Len(t, seen, tt.posts)
		})
	}
}

func TestGetPosts_CreationStampsOutOfIdentityOrder(t *testing.T) {
	base := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		posts int
		stamp func(tick int) time.Time
	}{
		{
			name:  "every insert stamped earlier",
			posts: 3,
			stamp: func(tick int) time.Time { return base.Add(-time.Duration(tick) * time.Second) },
		},
		{
			name:  "interleaved stamps",
			posts: 5,
			stamp: func(tick int) time.Time {
				offsets := []int{1, 4, 2, 3, 6, 5}
				return base.Add(time.Duration(offsets[tick%len(offsets)]) * time.Second)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tick := 0
			db := memory.NewDB(logger.New("test")).WithClock(func() time.Time {
				stamp := tt.stamp(tick)
				tick++
				return stamp
			})
			ctx := context.Background()
			office, err := db.StudentOfficeRepository().Create(ctx, &model.StudentOffice{SchoolName: "Polytech", Domain: "poly.edu"})
			require.NoError(t, err)
			f := &fixture{db: db, office: office, ctx: ctx}

			var want []int64
			for i := 0; i < tt.posts; i++ {
				want = append([]int64{f.post(t, nil).ID}, want...)
			}
			svc := f.service(t, 2)

			var got []int64
			var cursor *int64
			for pages := 0; ; pages++ {
				require.Less(t, pages, tt.posts+1, "feed walk does not terminate")
				page, err := svc.GetPosts(ctx, model.FeedQuery{StudentOfficeID: office.ID, Cursor: cursor})
				require.NoError(t, err)
				got = append(got, ids(page.Posts)...)

				next, ok := pagination.NextCursor(page.Pagination)
				if !ok {
					break
				}
				cursor = &next
			}

			assert.Equal(t, want, got)
		})
	}
}

func TestGetPosts_LogsCursorValue(t *testing.T) {
	f := newFixture(t)
	f.post(t, nil)

	var out bytes.Buffer
	svc, err := feed_service.NewFeedService(f.db.PostRepository(), 2, logger.NewWithWriter("local", &out), metrics.NewPrometheusMetricsProvider())
	require.NoError(t, err)

	cursor := int64(7)
	_, err = svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, Cursor: &cursor})
	require.NoError(t, err)
	_, err = svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "cursor=7")
	assert.Contains(t, out.String(), "cursor=none")
	assert.NotContains(t, out.String(), "cursor=0x")
}

func TestGetPosts_StableUnderInsert(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.post(t, nil)
	}
	svc := f.service(t, 2)

	first, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID})
	require.NoError(t, err)
	next, ok := pagination.NextCursor(first.Pagination)
	require.True(t, ok)

	f.post(t, nil)

	second, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, Cursor: &next})
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 4}, ids(first.Posts))
	assert.Equal(t, []int64{3, 2}, ids(second.Posts))
}

func TestGetPosts_Tally(t *testing.T) {
	f := newFixture(t)
	poll := f.post(t, []string{"a", "b"})
	u1, u2, u3, u4 := f.user(t, "u1"), f.user(t, "u2"), f.user(t, "u3"), f.user(t, "u4")
	f.vote(t, u1, poll, 0)
	f.vote(t, u2, poll, 1)
	f.vote(t, u3, poll, 1)
	svc := f.service(t, 10)

	page, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, CallerUserID: u2.ID})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, []int{1, 2}, page.Posts[0].Votes)
	require.NotNil(t, page.Posts[0].UserVoteOptionIndex)
	assert.Equal(t, 1, *page.Posts[0].UserVoteOptionIndex)

	page, err = svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, CallerUserID: u4.ID})
	require.NoError(t, err)
	raw, err := json.Marshal(page.Posts[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"votes":[1,2]`)
	assert.NotContains(t, string(raw), "userVoteOptionIndex")
}

func TestGetPosts_NonPollOmitsVotes(t *testing.T) {
	f := newFixture(t)
	plain := f.post(t, nil)
	poll := f.post(t, []string{"yes", "no"})
	voter := f.user(t, "voter")
	f.vote(t, voter, poll, 0)
	svc := f.service(t, 10)

	page, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID, CallerUserID: voter.ID})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)

	var plainView model.PostView
	for _, view := range page.Posts {
		if view.ID == plain.ID {
			plainView = view
		}
	}

	raw, err := json.Marshal(plainView)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"votes"`)
	assert.NotContains(t, string(raw), "userVoteOptionIndex")
	assert.Contains(t, string(raw), `"pollOptions":null`)
	assert.Contains(t, string(raw), `"updatedOn":null`)
}

func TestGetPosts_EmptyFeed(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, 5)

	page, err := svc.GetPosts(f.ctx, model.FeedQuery{StudentOfficeID: f.office.ID})
	require.NoError(t, err)

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"posts":[],"pagination":{"hasNextPage":false}}`, string(raw))
}

func TestBuildFeedPage_ProbeBecomesCursor(t *testing.T) {
	rows := []*model.PostWithVotes{
		{Post: model.Post{ID: 9}},
		{Post: model.Post{ID: 8}},
		{Post: model.Post{ID: 6}},
	}

	page := feed_service.BuildFeedPage(rows, 2, 0)

	assert.Equal(t, []int64{9, 8}, ids(page.Posts))
	assert.Equal(t, pagination.More{NextCursor: 6}, page.Pagination)

	raw, err := json.Marshal(page.Pagination)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasNextPage":true,"nextCursor":6}`, string(raw))
}

func TestBuildFeedPage_EmptyPollKeepsEmptyTally(t *testing.T) {
	rows := []*model.PostWithVotes{{Post: model.Post{ID: 1, PollOptions: []string{}}}}

	page := feed_service.BuildFeedPage(rows, 2, 0)

	raw, err := json.Marshal(page.Posts[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"votes":[]`)
}

func ids(views []model.PostView) []int64 {
	out := make([]int64, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}
