package session_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	session_store "studentoffice-service/internal/domain/ports/output/session"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
)

const DefaultLifetime = 30 * 24 * time.Hour

type SessionService struct {
	store    session_store.Store
	userRepo user_repository.Repository
	lifetime time.Duration
	log      ports.Logger
	now      func() time.Time
}

func NewSessionService(store session_store.Store, userRepo user_repository.Repository, lifetime time.Duration, log ports.Logger) *SessionService {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &SessionService{
		store:    store,
		userRepo: userRepo,
		lifetime: lifetime,
		log:      log,
		now:      time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) Lifetime() time.Duration {
	return s.lifetime
}

func (s *SessionService) Create(ctx context.Context, userID int64) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.lifetime),
		Fresh:     true,
	}
	if err := s.store.Save(ctx, session); err != nil {
		s.log.Error("Failed to store session", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Debug("Session created", slog.Int64("user_id", userID))
	return session, nil
}

// Validate resolves a session id to its user. Sessions inside the second half
// of their lifetime are pushed out to a full lifetime and marked Fresh.
func (s *SessionService) Validate(ctx context.Context, sessionID string) (*model.AuthContext, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, custom_errors.ErrSessionNotFound
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if session.Expired(now) {
		s.log.Debug("Session expired", slog.Int64("user_id", session.UserID))
		if err := s.store.Delete(ctx, sessionID); err != nil {
			s.log.Warn("Failed to drop expired session", slog.String("error", err.Error()))
		}
		return nil, custom_errors.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Session belongs to a deleted user", slog.Int64("user_id", session.UserID))
			if err := s.store.Delete(ctx, sessionID); err != nil {
				s.log.Warn("Failed to drop orphaned session", slog.String("error", err.Error()))
			}
			return nil, custom_errors.ErrSessionNotFound
		}
		return nil, err
	}

	if session.ExpiresAt.Sub(now) < s.lifetime/2 {
		session.ExpiresAt = now.Add(s.lifetime)
		if err := s.store.Save(ctx, session); err != nil {
			s.log.Error("Failed to extend session", slog.Int64("user_id", session.UserID), slog.String("error", err.Error()))
			return nil, err
		}
		session.Fresh = true
		s.log.Debug("Session extended", slog.Int64("user_id", session.UserID))
	}

	return &model.AuthContext{User: user, Session: session}, nil
}

func (s *SessionService) Invalidate(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.Error("Failed to invalidate session", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *SessionService) InvalidateUser(ctx context.Context, userID int64) error {
	if err := s.store.DeleteByUser(ctx, userID); err != nil {
		s.log.Error("Failed to invalidate user sessions", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return err
	}
	return nil
}
