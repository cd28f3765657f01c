package user_http_test

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
	"studentoffice-service/internal/infrastructure/config"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	user_http "studentoffice-service/internal/infrastructure/inbound/http/user"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
	"studentoffice-service/internal/infrastructure/logger"
	"studentoffice-service/mocks"
)

const cookieName = "auth_session"

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	users    *mocks.UserService
	sessions *mocks.SessionService
	router   *gin.Engine
}

// newHarness mounts the user routes; when auth is non-nil every request
// arrives already signed in.
func newHarness(t *testing.T, auth *model.AuthContext) *harness {
	t.Helper()

	log := logger.New("test")
	validate := validation.New()
	cookie := middleware.NewSessionCookie(config.Session{
		CookieName: cookieName,
		HashKey:    "0123456789abcdef0123456789abcdef",
		TTL:        time.Hour,
	}, log)

	h := &harness{
		users:    mocks.NewUserService(t),
		sessions: mocks.NewSessionService(t),
		router:   gin.New(),
	}

	g := h.router.Group("/users", func(c *gin.Context) {
		if auth != nil {
			middleware.SetAuthContext(c, auth)
		}
		c.Next()
	})
	g.POST("/register", user_http.NewRegisterHandler(h.users, h.sessions, cookie, validate, log).Register)
	g.POST("/login", user_http.NewLoginHandler(h.users, h.sessions, cookie, validate, log).Login)
	g.POST("/logout", user_http.NewLogoutHandler(h.sessions, cookie, log).Logout)
	g.GET("", user_http.NewGetUserHandler(h.users, log).GetUser)
	g.PUT("", user_http.NewUpdateUserHandler(h.users, validate, log).UpdateUser)
	g.PUT("/password", user_http.NewUpdatePasswordHandler(h.users, h.sessions, cookie, validate, log).UpdatePassword)
	g.DELETE("", user_http.NewDeleteUserHandler(h.users, h.sessions, cookie, log).DeleteUser)
	return h
}

func (h *harness) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func signedIn() *model.AuthContext {
	return &model.AuthContext{
		User:    &model.User{ID: 5, Login: "alice", Role: model.RoleStudent},
		Session: &model.Session{ID: "old-session", UserID: 5, ExpiresAt: time.Now().Add(time.Hour)},
	}
}

func newSession(userID int64) *model.Session {
	return &model.Session{ID: "new-session", UserID: userID, ExpiresAt: time.Now().Add(time.Hour), Fresh: true}
}

func registration() map[string]any {
	return map[string]any{
		"login":    "alice",
		"email":    "alice@mail.io",
		"fullName": "Alice Martin",
		"phone":    "+33612345678",
		"password": "supersecret",
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newHarness(t, nil)

		h.users.On("Register", mock.Anything, mock.MatchedBy(func(dto *model.CreateUserDTO) bool {
			return dto.Login == "alice" && *dto.Phone == "+33612345678" && dto.StudentOfficeID == nil
		})).Return(&model.User{ID: 5, Login: "alice", Email: "alice@mail.io"}, nil)
		h.sessions.On("Create", mock.Anything, int64(5)).Return(newSession(5), nil)

		w := h.do(http.MethodPost, "/users/register", registration())

		require.Equal(t, http.StatusCreated, w.Code)
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.NotContains(t, w.Body.String(), "passwordHash")
	})

	t.Run("ReplacesExistingSession", func(t *testing.T) {
		h := newHarness(t, signedIn())

		h.sessions.On("Invalidate", mock.Anything, "old-session").Return(nil)
		h.users.On("Register", mock.Anything, mock.Anything).Return(&model.User{ID: 6}, nil)
		h.sessions.On("Create", mock.Anything, int64(6)).Return(newSession(6), nil)

		w := h.do(http.MethodPost, "/users/register", registration())

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ValidationError", func(t *testing.T) {
		h := newHarness(t, nil)

		body := registration()
		body["login"] = "a b"
		body["phone"] = "0612"
		body["password"] = "short"

		w := h.do(http.MethodPost, "/users/register", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid request","properties":["/login","/phone","/password"]}`, w.Body.String())
		h.users.AssertNotCalled(t, "Register")
	})

	t.Run("AlreadyTaken", func(t *testing.T) {
		h := newHarness(t, nil)

		h.users.On("Register", mock.Anything, mock.Anything).
			Return(nil, custom_errors.NewAlreadyTakenDataError("user", "/login", "/email"))

		w := h.do(http.MethodPost, "/users/register", registration())

		require.Equal(t, http.StatusConflict, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "already_taken", body["type"])
		assert.Equal(t, []any{"/login", "/email"}, body["properties"])
		h.sessions.AssertNotCalled(t, "Create")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newHarness(t, nil)

		h.users.On("Login", mock.Anything, model.Credentials{Login: "+33612345678", Password: "supersecret"}).
			Return(&model.User{ID: 5, Login: "alice"}, nil)
		h.sessions.On("Create", mock.Anything, int64(5)).Return(newSession(5), nil)

		w := h.do(http.MethodPost, "/users/login", map[string]any{"login": "+33612345678", "password": "supersecret"})

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, sessionCookie(w))
	})

	t.Run("UnknownLogin", func(t *testing.T) {
		h := newHarness(t, nil)

		h.users.On("Login", mock.Anything, mock.Anything).
			Return(nil, custom_errors.NewNotFoundDataError("credentials", "/login"))

		w := h.do(http.MethodPost, "/users/login", map[string]any{"login": "nobody", "password": "supersecret"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		h := newHarness(t, nil)

		h.users.On("Login", mock.Anything, mock.Anything).
			Return(nil, custom_errors.NewMismatchDataError("credentials", "/login", "/password"))

		w := h.do(http.MethodPost, "/users/login", map[string]any{"login": "alice", "password": "wrongpass"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		h.sessions.AssertNotCalled(t, "Create")
	})
}

func TestLogoutHandler(t *testing.T) {
	h := newHarness(t, signedIn())
	h.sessions.On("Invalidate", mock.Anything, "old-session").Return(nil)

	w := h.do(http.MethodPost, "/users/logout", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestGetUserHandler(t *testing.T) {
	h := newHarness(t, signedIn())
	officeID := int64(3)
	h.users.On("Get", mock.Anything, int64(5)).
		Return(&model.User{ID: 5, Login: "alice", PasswordHash: "secret-hash", StudentOfficeID: &officeID}, nil)

	w := h.do(http.MethodGet, "/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")
	assert.NotContains(t, w.Body.String(), "studentOfficeId")
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newHarness(t, signedIn())

		body := registration()
		delete(body, "password")
		body["schoolEmail"] = "alice@poly.edu"
		body["studentOfficeId"] = 3

		h.users.On("Update", mock.Anything, mock.MatchedBy(func(dto *model.UpdateUserDTO) bool {
			return dto.ID == 5 && *dto.SchoolEmail == "alice@poly.edu" && *dto.StudentOfficeID == 3
		})).Return(&model.User{ID: 5, Login: "alice"}, nil)

		w := h.do(http.MethodPut, "/users", body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ClaimMismatch", func(t *testing.T) {
		h := newHarness(t, signedIn())

		body := registration()
		delete(body, "password")
		body["schoolEmail"] = "alice@poly.edu"

		h.users.On("Update", mock.Anything, mock.Anything).
			Return(nil, custom_errors.NewMismatchDataError("user", "/studentOfficeId", "/schoolEmail"))

		w := h.do(http.MethodPut, "/users", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdatePasswordHandler(t *testing.T) {
	h := newHarness(t, signedIn())
	h.users.On("UpdatePassword", mock.Anything, int64(5), "brandnewpass").Return(nil)
	h.sessions.On("InvalidateUser", mock.Anything, int64(5)).Return(nil)
	h.sessions.On("Create", mock.Anything, int64(5)).Return(newSession(5), nil)

	w := h.do(http.MethodPut, "/users/password", map[string]any{"password": "brandnewpass"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestDeleteUserHandler(t *testing.T) {
	h := newHarness(t, signedIn())
	h.users.On("Delete", mock.Anything, int64(5)).Return(nil)
	h.sessions.On("InvalidateUser", mock.Anything, int64(5)).Return(nil)

	w := h.do(http.MethodDelete, "/users", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}
