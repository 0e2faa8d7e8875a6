package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hearts/internal/domain/entity"
	"hearts/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (repository.LivesCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewLivesCache(LivesCacheParams{
		Client: client,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return c, mr
}

func TestLivesCache_SaveLoadRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	quizID := int64(42)
	lives := &entity.UserLives{
		CurrentLives:     4,
		MaxLives:         10,
		LastRegeneration: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
		History: []entity.HistoryEntry{
			{
				ID:        uuid.New(),
				Type:      entity.HistoryLost,
				Amount:    1,
				Reason:    "quiz failed",
				Timestamp: time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC),
				QuizID:    &quizID,
			},
			{
				ID:        uuid.New(),
				Type:      entity.HistoryRegenerated,
				Amount:    5,
				Reason:    "daily regeneration",
				Timestamp: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
			},
		},
	}

	require.NoError(t, c.Save(ctx, userID, lives))

	loaded, err := c.Load(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, lives.CurrentLives, loaded.CurrentLives)
	assert.Equal(t, lives.MaxLives, loaded.MaxLives)
	assert.True(t, loaded.LastRegeneration.Equal(lives.LastRegeneration))

	require.Len(t, loaded.History, 2)
	for i, want := range lives.History {
		got := loaded.History[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Amount, got.Amount)
		assert.Equal(t, want.Reason, got.Reason)
		assert.True(t, got.Timestamp.Equal(want.Timestamp))
		assert.Equal(t, want.QuizID, got.QuizID)
		assert.Equal(t, want.CourseID, got.CourseID)
	}
}

func TestLivesCache_SaveReplacesPreviousSnapshot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	window := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, c.Save(ctx, userID, entity.NewUserLives(10, window)))

	updated := entity.NewUserLives(10, window)
	updated.CurrentLives = 7
	require.NoError(t, c.Save(ctx, userID, updated))

	loaded, err := c.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.CurrentLives)
}

func TestLivesCache_LoadMissingSnapshot(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestLivesCache_CorruptPayloadTreatedAsMissing(t *testing.T) {
	c, mr := newTestCache(t)
	userID := uuid.New()

	require.NoError(t, mr.Set(livesKey(userID), "{not json"))

	_, err := c.Load(context.Background(), userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestLivesCache_DeleteRemovesSnapshot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, c.Save(ctx, userID, entity.NewUserLives(10, time.Now())))
	require.NoError(t, c.Delete(ctx, userID))

	_, err := c.Load(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}
