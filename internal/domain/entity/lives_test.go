package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserLives_FactoryDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lives := NewUserLives(10, now)

	assert.Equal(t, 10, lives.CurrentLives)
	assert.Equal(t, 10, lives.MaxLives)
	assert.Equal(t, now, lives.LastRegeneration)
	assert.Empty(t, lives.History)
	assert.True(t, lives.IsFull())
	assert.False(t, lives.IsEmpty())
}

func TestUserLives_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  int
		expected int
	}{
		{name: "below zero clamps to zero", current: -3, expected: 0},
		{name: "above ceiling clamps to max", current: 15, expected: 10},
		{name: "in range untouched", current: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lives := NewUserLives(10, time.Now())
			lives.CurrentLives = tt.current
			lives.Clamp()

			assert.Equal(t, tt.expected, lives.CurrentLives)
		})
	}
}

func TestUserLives_SetCount(t *testing.T) {
	t.Parallel()

	lives := NewUserLives(10, time.Now())

	lives.SetCount(4, 12)
	assert.Equal(t, 4, lives.CurrentLives)
	assert.Equal(t, 12, lives.MaxLives)

	// A non-positive max keeps the previous ceiling.
	lives.SetCount(20, 0)
	assert.Equal(t, 12, lives.MaxLives)
	assert.Equal(t, 12, lives.CurrentLives)
}

func TestUserLives_Record_CapsAtLimit(t *testing.T) {
	t.Parallel()

	lives := NewUserLives(10, time.Now())
	for i := 0; i < 55; i++ {
		lives.Record(HistoryEntry{
			ID:     uuid.New(),
			Type:   HistoryLost,
			Amount: i + 1,
		}, 50)
	}

	require.Len(t, lives.History, 50)
	// Most recent first: the 55th recorded entry leads the list.
	assert.Equal(t, 55, lives.History[0].Amount)
	assert.Equal(t, 6, lives.History[49].Amount)
}

func TestUserLives_TimeUntilNextRegeneration(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	interval := 24 * time.Hour
	lives := NewUserLives(10, start)

	assert.Equal(t, interval, lives.TimeUntilNextRegeneration(start, interval))
	assert.Equal(t, 14*time.Hour, lives.TimeUntilNextRegeneration(start.Add(10*time.Hour), interval))

	// Past the window the countdown clamps to zero.
	assert.Equal(t, time.Duration(0), lives.TimeUntilNextRegeneration(start.Add(30*time.Hour), interval))

	assert.False(t, lives.RegenerationDue(start.Add(23*time.Hour), interval))
	assert.True(t, lives.RegenerationDue(start.Add(24*time.Hour), interval))
}

func TestUserLives_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	lives := NewUserLives(10, time.Now())
	lives.Record(HistoryEntry{ID: uuid.New(), Type: HistoryLost, Amount: 1}, 50)

	clone := lives.Clone()
	require.NotNil(t, clone)

	clone.CurrentLives = 2
	clone.History[0].Amount = 99

	assert.Equal(t, 10, lives.CurrentLives)
	assert.Equal(t, 1, lives.History[0].Amount)
}

func TestUserLives_Clone_Nil(t *testing.T) {
	t.Parallel()

	var lives *UserLives
	assert.Nil(t, lives.Clone())
}
