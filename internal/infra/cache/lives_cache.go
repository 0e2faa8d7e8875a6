package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"hearts/internal/domain/entity"
	"hearts/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const livesKeyPrefix = "lives:"

// LivesCacheParams holds dependencies for the lives cache, injected by Fx.
type LivesCacheParams struct {
	fx.In

	Client *redis.Client
	Logger *slog.Logger
}

// livesCache keeps one JSON snapshot per user so a session can resume when
// the platform API is unreachable. Snapshots never expire; they are replaced
// on every mutation and removed on reset.
type livesCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewLivesCache is the constructor for livesCache.
func NewLivesCache(params LivesCacheParams) repository.LivesCache {
	return &livesCache{
		client: params.Client,
		logger: params.Logger,
	}
}

func livesKey(userID uuid.UUID) string {
	return livesKeyPrefix + userID.String()
}

// Load reads the user's snapshot. A corrupt payload is treated the same as a
// missing one so the caller falls back to the remote or factory defaults.
func (c *livesCache) Load(ctx context.Context, userID uuid.UUID) (*entity.UserLives, error) {
	raw, err := c.client.Get(ctx, livesKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load lives snapshot")
	}

	var lives entity.UserLives
	if err := json.Unmarshal([]byte(raw), &lives); err != nil {
		c.logger.Warn("Discarding corrupt lives snapshot",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, repository.ErrSnapshotNotFound
	}

	return &lives, nil
}

// Save writes the user's snapshot, replacing any previous one.
func (c *livesCache) Save(ctx context.Context, userID uuid.UUID, lives *entity.UserLives) error {
	raw, err := json.Marshal(lives)
	if err != nil {
		return errors.Wrap(err, "failed to encode lives snapshot")
	}

	if err := c.client.Set(ctx, livesKey(userID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save lives snapshot")
	}

	return nil
}

// Delete removes the user's snapshot.
func (c *livesCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, livesKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete lives snapshot")
	}

	return nil
}
