package repository

import (
	"context"

	"hearts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no cached snapshot exists for a user.
// Corrupt snapshots are reported the same way: a cache that cannot be parsed
// is treated as no cache at all.
var ErrSnapshotNotFound = errors.New("lives snapshot not found")

// LivesCache is the local persistence fallback: one serialized UserLives
// slot per user, read on initialization and rewritten after every mutation.
// It is a cache, never the source of truth, so writes are best-effort.
type LivesCache interface {
	// Load reads the cached snapshot for a user.
	Load(ctx context.Context, userID uuid.UUID) (*entity.UserLives, error)

	// Save overwrites the cached snapshot for a user.
	Save(ctx context.Context, userID uuid.UUID, lives *entity.UserLives) error

	// Delete removes the cached snapshot, used on sign-out and reset.
	Delete(ctx context.Context, userID uuid.UUID) error
}
