package vote_http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	vote_http "studentoffice-service/internal/infrastructure/inbound/http/vote"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
	"studentoffice-service/internal/infrastructure/logger"
	"studentoffice-service/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(votes *mocks.VoteService) *gin.Engine {
	log := logger.New("test")
	validate := validation.New()
	officeID := int64(2)
	auth := &model.AuthContext{
		User:    &model.User{ID: 11, Role: model.RoleStudent, StudentOfficeID: &officeID},
		Session: &model.Session{ID: "s", UserID: 11},
	}

	r := gin.New()
	g := r.Group("/votes", func(c *gin.Context) {
		middleware.SetAuthContext(c, auth)
		c.Next()
	})
	g.POST("", vote_http.NewCastVoteHandler(votes, validate, log).CastVote)
	g.DELETE("", vote_http.NewRetractVoteHandler(votes, validate, log).RetractVote)
	return r
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/votes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCastVoteHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.VoteService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "first option",
			body: `{"postId":4,"optionIndex":0}`,
			setup: func(m *mocks.VoteService) {
				m.On("CastVote", mock.Anything, &model.CastVoteDTO{UserID: 11, StudentOfficeID: 2, PostID: 4, OptionIndex: 0}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing option index",
			body:       `{"postId":4}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request","properties":["/optionIndex"]}`,
		},
		{
			name:       "negative option index",
			body:       `{"postId":4,"optionIndex":-1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request","properties":["/optionIndex"]}`,
		},
		{
			name: "option out of range",
			body: `{"postId":4,"optionIndex":9}`,
			setup: func(m *mocks.VoteService) {
				m.On("CastVote", mock.Anything, mock.Anything).Return(custom_errors.NewMismatchDataError("vote", "/postId", "/optionIndex"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"type":"mismatch","object":"vote","properties":["/postId","/optionIndex"],"message":"The vote contains some properties whose values don't match."}`,
		},
		{
			name: "unknown post",
			body: `{"postId":4,"optionIndex":1}`,
			setup: func(m *mocks.VoteService) {
				m.On("CastVote", mock.Anything, mock.Anything).Return(custom_errors.NewNotFoundDataError("vote", "/postId"))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			votes := mocks.NewVoteService(t)
			if tt.setup != nil {
				tt.setup(votes)
			}

			w := do(newRouter(votes), http.MethodPost, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRetractVoteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		votes := mocks.NewVoteService(t)
		votes.On("RetractVote", mock.Anything, int64(11), int64(4)).Return(nil)

		w := do(newRouter(votes), http.MethodDelete, `{"postId":4}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("MissingPostID", func(t *testing.T) {
		votes := mocks.NewVoteService(t)

		w := do(newRouter(votes), http.MethodDelete, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		votes.AssertNotCalled(t, "RetractVote")
	})
}
