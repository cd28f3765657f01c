package redis

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

type SessionStore struct {
	client  *Client
	log     ports.Logger
	metrics ports.MetricsProvider
	now     func() time.Time
}

func NewSessionStore(client *Client, log ports.Logger, metrics ports.MetricsProvider) *SessionStore {
	return &SessionStore{
		client:  client,
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *SessionStore) Save(ctx context.Context, session *model.Session) error {
	start := time.Now()
	defer func() {
		s.metrics.RecordCacheOperationDuration("session_save", time.Since(start))
	}()

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		s.log.Debug("Refusing to store expired session", slog.Int64("user_id", session.UserID))
		return custom_errors.ErrSessionExpired
	}

	if err := s.client.Set(ctx, s.sessionKey(session.ID), session, ttl); err != nil {
		return err
	}
	if err := s.client.AddToSet(ctx, s.userSessionsKey(session.UserID), session.ID, ttl); err != nil {
		return err
	}

	s.log.Debug("Session stored",
		slog.Int64("user_id", session.UserID),
		slog.Time("expires_at", session.ExpiresAt))
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordCacheOperationDuration("session_get", time.Since(start))
	}()

	var session model.Session
	if err := s.client.Get(ctx, s.sessionKey(id), &session); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			s.metrics.IncrementCacheMisses()
			return nil, custom_errors.ErrSessionNotFound
		}
		return nil, err
	}

	s.metrics.IncrementCacheHits()
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	defer func() {
		s.metrics.RecordCacheOperationDuration("session_delete", time.Since(start))
	}()

	var session model.Session
	err := s.client.Get(ctx, s.sessionKey(id), &session)
	if err != nil && !errors.Is(err, custom_errors.ErrCacheMiss) {
		return err
	}
	if err == nil {
		if err := s.client.RemoveFromSet(ctx, s.userSessionsKey(session.UserID), id); err != nil {
			return err
		}
	}

	return s.client.Delete(ctx, s.sessionKey(id))
}

func (s *SessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	start := time.Now()
	defer func() {
		s.metrics.RecordCacheOperationDuration("session_delete_by_user", time.Since(start))
	}()

	ids, err := s.client.SetMembers(ctx, s.userSessionsKey(userID))
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.sessionKey(id))
	}
	keys = append(keys, s.userSessionsKey(userID))

	if err := s.client.Delete(ctx, keys...); err != nil {
		return err
	}

	s.log.Debug("Sessions removed for user", slog.Int64("user_id", userID), slog.Int("count", len(ids)))
	return nil
}

func (s *SessionStore) sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionStore) userSessionsKey(userID int64) string {
	return userSessionsKeyPrefix + strconv.FormatInt(userID, 10)
}
