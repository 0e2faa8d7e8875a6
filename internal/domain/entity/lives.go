// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoryType classifies a single lives mutation.
type HistoryType string

const (
	// HistoryLost records lives removed after a failed quiz attempt.
	HistoryLost HistoryType = "lost"
	// HistoryGained records lives granted outside the regeneration rule,
	// e.g. a reconciliation pass that found a higher remote count.
	HistoryGained HistoryType = "gained"
	// HistoryRegenerated records lives restored by the regeneration clock.
	HistoryRegenerated HistoryType = "regenerated"
)

// HistoryEntry is an audit record of one lives mutation. Entries are owned
// by UserLives and are only destroyed by the history cap.
type HistoryEntry struct {
	ID        uuid.UUID   `json:"id"`                 // Unique within a session; creation-time derived.
	Type      HistoryType `json:"type"`               // lost | gained | regenerated.
	Amount    int         `json:"amount"`             // Always positive; the sign is carried by Type.
	Reason    string      `json:"reason"`             // Free text for audit/debugging display.
	Timestamp time.Time   `json:"timestamp"`          // Creation time of the entry.
	QuizID    *int64      `json:"quizId,omitempty"`   // Optional correlation to the quiz that caused it.
	CourseID  *int64      `json:"courseId,omitempty"` // Optional correlation to the owning course.
}

// UserLives is the root aggregate for one signed-in user's lives state.
// It is owned exclusively by the lives manager; everything else reads
// snapshots of it.
type UserLives struct {
	CurrentLives     int            `json:"currentLives"`     // 0 <= CurrentLives <= MaxLives, clamped on every mutation.
	MaxLives         int            `json:"maxLives"`         // Ceiling, constant per configuration.
	LastRegeneration time.Time      `json:"lastRegeneration"` // Start of the current regeneration window; only moves forward.
	History          []HistoryEntry `json:"livesHistory"`     // Most-recent-first, bounded by the history cap.
}

// NewUserLives returns the factory-default state: full lives and a
// regeneration window opening now. This is also the unauthenticated state.
func NewUserLives(maxLives int, now time.Time) *UserLives {
	return &UserLives{
		CurrentLives:     maxLives,
		MaxLives:         maxLives,
		LastRegeneration: now,
	}
}

// SetCount replaces the counts with remote-authoritative values, clamping
// into the valid range.
func (u *UserLives) SetCount(current, maxLives int) {
	if maxLives > 0 {
		u.MaxLives = maxLives
	}
	u.CurrentLives = current
	u.Clamp()
}

// Clamp forces CurrentLives back into [0, MaxLives].
func (u *UserLives) Clamp() {
	if u.CurrentLives < 0 {
		u.CurrentLives = 0
	}
	if u.CurrentLives > u.MaxLives {
		u.CurrentLives = u.MaxLives
	}
}

// IsEmpty reports whether the user is out of lives and therefore blocked
// from gated content.
func (u *UserLives) IsEmpty() bool {
	return u.CurrentLives <= 0
}

// IsFull reports whether the user is at the ceiling.
func (u *UserLives) IsFull() bool {
	return u.CurrentLives >= u.MaxLives
}

// Record prepends a history entry and drops the oldest entries past limit.
func (u *UserLives) Record(entry HistoryEntry, limit int) {
	u.History = append([]HistoryEntry{entry}, u.History...)
	if limit > 0 && len(u.History) > limit {
		u.History = u.History[:limit]
	}
}

// TimeUntilNextRegeneration returns how long until the current window
// elapses, clamped to zero. It is a pure function of LastRegeneration and
// must be recomputed on every call.
func (u *UserLives) TimeUntilNextRegeneration(now time.Time, interval time.Duration) time.Duration {
	remaining := interval - now.Sub(u.LastRegeneration)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// RegenerationDue reports whether the regeneration interval has elapsed.
func (u *UserLives) RegenerationDue(now time.Time, interval time.Duration) bool {
	return now.Sub(u.LastRegeneration) >= interval
}

// Clone returns a deep copy, used for pre-mutation snapshots and for
// handing read-only state across the usecase boundary.
func (u *UserLives) Clone() *UserLives {
	if u == nil {
		return nil
	}

	clone := *u
	clone.History = make([]HistoryEntry, len(u.History))
	copy(clone.History, u.History)

	return &clone
}
