package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/config"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
)

const authContextKey = "auth_context"

type SessionValidator interface {
	Validate(ctx context.Context, sessionID string) (*model.AuthContext, error)
}

// SessionCookie carries the session id in a signed (and, with a block key,
// encrypted) cookie.
type SessionCookie struct {
	name   string
	secure bool
	codec  *securecookie.SecureCookie
}

func NewSessionCookie(cfg config.Session, log ports.Logger) *SessionCookie {
	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		log.Warn("Session hash key not configured, using a random one; sessions will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(cfg.TTL.Seconds()))

	return &SessionCookie{
		name:   cfg.CookieName,
		secure: cfg.Secure,
		codec:  codec,
	}
}

func (s *SessionCookie) Name() string {
	return s.name
}

func (s *SessionCookie) Set(c *gin.Context, session *model.Session) error {
	encoded, err := s.codec.Encode(s.name, session.ID)
	if err != nil {
		return err
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name, encoded, maxAge, "/", "", s.secure, true)
	return nil
}

// Clear sends a blank, already expired cookie.
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name, "", -1, "/", "", s.secure, true)
}

// Read returns the session id from the request. present reports whether the
// cookie was sent at all, valid or not.
func (s *SessionCookie) Read(c *gin.Context) (sessionID string, present bool) {
	raw, err := c.Cookie(s.name)
	if err != nil || raw == "" {
		return "", false
	}
	if err := s.codec.Decode(s.name, raw, &sessionID); err != nil {
		return "", true
	}
	return sessionID, true
}

// Session resolves the cookie to a user. It never rejects a request; routes
// that need a user add RequireUser.
func Session(cookie *SessionCookie, sessions SessionValidator, log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, present := cookie.Read(c)
		if !present {
			c.Next()
			return
		}
		if sessionID == "" {
			log.Debug("Rejected undecodable session cookie", slog.String("path", c.Request.URL.Path))
			cookie.Clear(c)
			c.Next()
			return
		}

		auth, err := sessions.Validate(c.Request.Context(), sessionID)
		if err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrSessionNotFound), errors.Is(err, custom_errors.ErrSessionExpired):
				cookie.Clear(c)
			default:
				log.Error("Failed to validate session", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		if auth.Session.Fresh {
			if err := cookie.Set(c, auth.Session); err != nil {
				log.Error("Failed to refresh session cookie", slog.Int64("user_id", auth.User.ID), slog.String("error", err.Error()))
			}
		}
		c.Set(authContextKey, auth)
		c.Next()
	}
}

func AuthFromContext(c *gin.Context) (*model.AuthContext, bool) {
	value, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	auth, ok := value.(*model.AuthContext)
	return auth, ok && auth != nil
}

// SetAuthContext is used by handlers that open a session during the request.
func SetAuthContext(c *gin.Context, auth *model.AuthContext) {
	c.Set(authContextKey, auth)
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AuthFromContext(c); !ok {
			response.Message(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireMembership rejects users that do not belong to a student office.
func RequireMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := AuthFromContext(c)
		if !ok {
			response.Message(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		if auth.User.StudentOfficeID == nil {
			response.Message(c, http.StatusForbidden, "user is not a member of a student office")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := AuthFromContext(c)
		if !ok {
			response.Message(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		if !auth.User.IsAdmin() || auth.User.StudentOfficeID == nil {
			response.Message(c, http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
