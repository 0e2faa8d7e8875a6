package usecase

import (
	"context"
	"time"

	"hearts/internal/domain/entity"

	"github.com/google/uuid"
)

// LossInput carries one life-loss request from the delivery layer. Callers
// are expected to cap Amount at their own policy maximum (e.g. wrong
// answers per exam); the usecase only rejects non-positive amounts.
type LossInput struct {
	Amount   int    `json:"amount"`
	Reason   string `json:"reason"`
	QuizID   *int64 `json:"quiz_id,omitempty"`
	CourseID *int64 `json:"course_id,omitempty"`
}

// LivesSnapshot is the reactive view handed to UI consumers.
type LivesSnapshot struct {
	UserLives *entity.UserLives `json:"userLives"`
	IsLoaded  bool              `json:"isLoaded"`
	Error     string            `json:"error,omitempty"` // Last non-blocking sync failure, if any.
}

// LivesUsecase defines the lives manager surface consumed by the HTTP
// delivery. All operations address the signed-in user's session; the first
// authenticated touch initializes it (remote load, cache fallback, factory
// defaults) and sign-out tears it down.
type LivesUsecase interface {
	// Snapshot returns the current lives state, initializing the session
	// if needed.
	Snapshot(ctx context.Context, userID uuid.UUID) (*LivesSnapshot, error)

	// LoseLives pushes a life loss to the platform API and adopts the
	// server's resulting counts. On push failure the local state is rolled
	// back to its pre-call value and the error is returned; retrying is
	// the caller's decision.
	LoseLives(ctx context.Context, userID uuid.UUID, input *LossInput) (*LivesSnapshot, error)

	// RegenerateLives applies the regeneration rule if the interval has
	// elapsed. A call inside the window is a no-op and reports zero gain.
	RegenerateLives(ctx context.Context, userID uuid.UUID) (*LivesSnapshot, int, error)

	// ResetLives restores the factory-default state and clears the cache slot.
	ResetLives(ctx context.Context, userID uuid.UUID) (*LivesSnapshot, error)

	// TimeUntilNextRegeneration returns the countdown to the next
	// regeneration, clamped to zero. Recomputed on every call.
	TimeUntilNextRegeneration(ctx context.Context, userID uuid.UUID) (time.Duration, error)

	// CanAccessCourses reports whether the user may enter gated content
	// (currentLives > 0).
	CanAccessCourses(ctx context.Context, userID uuid.UUID) (bool, error)

	// History returns the persisted audit log, most recent first.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HistoryEntry, error)

	// EndSession discards the user's manager on sign-out, stopping its
	// timers. Subsequent touches start a fresh session.
	EndSession(ctx context.Context, userID uuid.UUID) error
}
