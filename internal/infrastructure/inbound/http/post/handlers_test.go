package post_http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	post_http "studentoffice-service/internal/infrastructure/inbound/http/post"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
	"studentoffice-service/internal/infrastructure/logger"
	"studentoffice-service/internal/pagination"
	"studentoffice-service/mocks"
)

const officeID = int64(7)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminAuth() *model.AuthContext {
	id := officeID
	return &model.AuthContext{
		User:    &model.User{ID: 3, Login: "admin", Role: model.RoleAdmin, StudentOfficeID: &id},
		Session: &model.Session{ID: "s", UserID: 3, ExpiresAt: time.Now().Add(time.Hour)},
	}
}

func withAuth(auth *model.AuthContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetAuthContext(c, auth)
		c.Next()
	}
}

func newRouter(feed *mocks.FeedService, posts *mocks.PostService) *gin.Engine {
	log := logger.New("test")
	validate := validation.New()

	r := gin.New()
	g := r.Group("/posts", withAuth(adminAuth()))
	g.GET("", post_http.NewGetFeedHandler(feed, log).GetFeed)
	g.POST("", post_http.NewCreatePostHandler(posts, validate, log).CreatePost)
	g.PUT("/:id", post_http.NewUpdatePostHandler(posts, validate, log).UpdatePost)
	g.DELETE("/:id", post_http.NewDeletePostHandler(posts, log).DeletePost)
	return r
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetFeedHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		feed := mocks.NewFeedService(t)
		r := newRouter(feed, mocks.NewPostService(t))

		cursor := int64(40)
		feed.On("GetPosts", mock.Anything, model.FeedQuery{StudentOfficeID: officeID, CallerUserID: 3, Cursor: &cursor}).
			Return(&model.FeedPage{Posts: []model.PostView{}, Pagination: pagination.More{NextCursor: 20}}, nil)

		w := do(r, http.MethodGet, "/posts?cursor=40", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"posts":[],"pagination":{"hasNextPage":true,"nextCursor":20}}`, w.Body.String())
	})

	t.Run("FirstPageWithoutCursor", func(t *testing.T) {
		feed := mocks.NewFeedService(t)
		r := newRouter(feed, mocks.NewPostService(t))

		feed.On("GetPosts", mock.Anything, model.FeedQuery{StudentOfficeID: officeID, CallerUserID: 3}).
			Return(&model.FeedPage{Posts: []model.PostView{}, Pagination: pagination.NoMore{}}, nil)

		w := do(r, http.MethodGet, "/posts", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"posts":[],"pagination":{"hasNextPage":false}}`, w.Body.String())
	})

	t.Run("InvalidCursor", func(t *testing.T) {
		feed := mocks.NewFeedService(t)
		r := newRouter(feed, mocks.NewPostService(t))

		w := do(r, http.MethodGet, "/posts?cursor=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		feed.AssertNotCalled(t, "GetPosts")
	})

	t.Run("DatabaseError", func(t *testing.T) {
		feed := mocks.NewFeedService(t)
		r := newRouter(feed, mocks.NewPostService(t))

		feed.On("GetPosts", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		w := do(r, http.MethodGet, "/posts", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("CreatePost", mock.Anything, &model.CreatePostDTO{
			StudentOfficeID: officeID,
			Title:           "Vote",
			Content:         "pick one",
			PollOptions:     []string{"a", "b"},
		}).Return(&model.Post{ID: 9, Title: "Vote", StudentOfficeID: officeID, PollOptions: []string{"a", "b"}}, nil)

		w := do(r, http.MethodPost, "/posts", map[string]any{"title": "Vote", "content": "pick one", "pollOptions": []string{"a", "b"}})

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(9), body["id"])
	})

	t.Run("ValidationError", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		w := do(r, http.MethodPost, "/posts", map[string]any{"title": "", "content": "x", "pollOptions": []string{""}})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid request","properties":["/title","/pollOptions/0"]}`, w.Body.String())
		posts.AssertNotCalled(t, "CreatePost")
	})

	t.Run("SanitizedToNothing", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("CreatePost", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrInvalidInput)

		w := do(r, http.MethodPost, "/posts", map[string]any{"title": "<script></script>", "content": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("UpdatePost", mock.Anything, &model.UpdatePostDTO{ID: 5, StudentOfficeID: officeID, Title: "t", Content: "c"}).
			Return(&model.Post{ID: 5, Title: "t", Content: "c"}, nil)

		w := do(r, http.MethodPut, "/posts/5", map[string]any{"title": "t", "content": "c"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		w := do(r, http.MethodPut, "/posts/zero", map[string]any{"title": "t", "content": "c"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		posts.AssertNotCalled(t, "UpdatePost")
	})

	t.Run("PostNotFound", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("UpdatePost", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrPostNotFound)

		w := do(r, http.MethodPut, "/posts/5", map[string]any{"title": "t", "content": "c"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"post not found"}`, w.Body.String())
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("DeletePost", mock.Anything, officeID, int64(5)).Return(nil)

		w := do(r, http.MethodDelete, "/posts/5", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		posts := mocks.NewPostService(t)
		r := newRouter(mocks.NewFeedService(t), posts)

		posts.On("DeletePost", mock.Anything, officeID, int64(5)).Return(custom_errors.ErrPostNotFound)

		w := do(r, http.MethodDelete, "/posts/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
