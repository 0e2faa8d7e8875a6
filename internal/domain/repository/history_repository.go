package repository

import (
	"context"

	"hearts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrHistoryNotFound is returned when a user has no persisted history.
var ErrHistoryNotFound = errors.New("lives history not found")

// HistoryRepository defines the interface for the durable audit log of
// lives mutations. The in-memory history inside UserLives serves the UI;
// this log backs the history endpoint and survives restarts.
type HistoryRepository interface {
	// Append persists a new history entry for a user.
	Append(ctx context.Context, userID uuid.UUID, entry *entity.HistoryEntry) error

	// ListByUser retrieves up to limit entries, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HistoryEntry, error)

	// TrimToLatest deletes all but the newest keep entries for a user.
	TrimToLatest(ctx context.Context, userID uuid.UUID, keep int) error
}
