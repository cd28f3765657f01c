package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/logger"
	metrics "studentoffice-service/internal/infrastructure/outbound/metrics/prometheus"
)

func setupSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	log := logger.New("test")
	client, err := NewClientWithOptions(&goredis.Options{Addr: mr.Addr()}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client, log, metrics.NewPrometheusMetricsProvider()), mr
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, mr := setupSessionStore(t)
	ctx := context.Background()

	session := &model.Session{ID: "abc", UserID: 7, ExpiresAt: time.Now().Add(time.Hour).UTC(), Fresh: true}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
	assert.False(t, got.Fresh)

	ttl := mr.TTL(sessionKeyPrefix + "abc")
	assert.Greater(t, ttl, 59*time.Minute)

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
}

func TestSessionStore_RejectsExpired(t *testing.T) {
	store, _ := setupSessionStore(t)

	err := store.Save(context.Background(), &model.Session{ID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})
	assert.ErrorIs(t, err, custom_errors.ErrSessionExpired)
}

func TestSessionStore_Delete(t *testing.T) {
	store, mr := setupSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &model.Session{ID: "a", UserID: 3, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "missing"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
	members, _ := mr.Members(userSessionsKeyPrefix + "3")
	assert.Empty(t, members)
}

func TestSessionStore_DeleteByUser(t *testing.T) {
	store, _ := setupSessionStore(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	require.NoError(t, store.Save(ctx, &model.Session{ID: "a", UserID: 1, ExpiresAt: expires}))
	require.NoError(t, store.Save(ctx, &model.Session{ID: "b", UserID: 1, ExpiresAt: expires}))
	require.NoError(t, store.Save(ctx, &model.Session{ID: "c", UserID: 2, ExpiresAt: expires}))

	require.NoError(t, store.DeleteByUser(ctx, 1))

	for _, id := range []string{"a", "b"} {
		_, err := store.Get(ctx, id)
		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
	}
	_, err := store.Get(ctx, "c")
	assert.NoError(t, err)
}
