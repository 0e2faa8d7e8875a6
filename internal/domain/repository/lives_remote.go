// Package repository defines the interfaces for the persistence and
// synchronization boundaries of the lives domain.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRemoteUnavailable is returned when the platform API cannot be reached
// or answers with a server-side failure. Read paths recover from it locally;
// the loss push path must surface it.
var ErrRemoteUnavailable = errors.New("platform lives endpoint unavailable")

// RemoteLives is the platform API's view of a user's lives.
type RemoteLives struct {
	RemainingLives int        // Authoritative remaining count.
	TotalLives     int        // Authoritative ceiling.
	LastDamageAt   *time.Time // When the user last lost a life, if known.
	ResetTime      *time.Time // When the current regeneration window ends, if known.
}

// LivesRemote defines the synchronization boundary against the platform API,
// the source of truth for lives counts.
type LivesRemote interface {
	// Fetch retrieves the authoritative lives state for a user.
	Fetch(ctx context.Context, userID uuid.UUID) (*RemoteLives, error)

	// ReportLoss pushes a life-loss of the given amount and returns the
	// server's resulting counts. The response values win over any local
	// optimistic state.
	ReportLoss(ctx context.Context, userID uuid.UUID, amount int) (*RemoteLives, error)
}
