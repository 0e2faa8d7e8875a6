package impl

import (
	"context"
	"testing"
	"time"

	"hearts/internal/domain/entity"
	domainerrors "hearts/internal/domain/errors"
	"hearts/internal/domain/repository"
	"hearts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManager_Initialize_RemoteFirst(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 3, TotalLives: 5}, nil)

	fx.manager.Initialize(ctx)

	lives, loaded, lastErr := fx.manager.Snapshot()
	require.True(t, loaded)
	assert.Empty(t, lastErr)
	assert.Equal(t, 3, lives.CurrentLives)
	assert.Equal(t, 5, lives.MaxLives)
	// Without upstream hints the window opens at load time.
	assert.Equal(t, fx.clock.Now(), lives.LastRegeneration)
	assert.Equal(t, 24*time.Hour, fx.manager.TimeUntilNextRegeneration())
}

func TestManager_Initialize_ResetTimeDerivesWindow(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	// The server says the counter resets in six hours, so the window must
	// have opened eighteen hours ago.
	resetTime := fx.clock.Now().Add(6 * time.Hour)
	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 2, TotalLives: 5, ResetTime: &resetTime}, nil)

	fx.manager.Initialize(ctx)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, fx.clock.Now().Add(-18*time.Hour), lives.LastRegeneration)
	assert.Equal(t, 6*time.Hour, fx.manager.TimeUntilNextRegeneration())
}

func TestManager_Initialize_LastDamageDerivesWindow(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	lastDamage := fx.clock.Now().Add(-2 * time.Hour)
	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 4, TotalLives: 5, LastDamageAt: &lastDamage}, nil)

	fx.manager.Initialize(ctx)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, lastDamage, lives.LastRegeneration)
	assert.Equal(t, 22*time.Hour, fx.manager.TimeUntilNextRegeneration())
}

func TestManager_Initialize_CacheFallback(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(nil, repository.ErrRemoteUnavailable)

	cached := &entity.UserLives{
		CurrentLives:     2,
		MaxLives:         5,
		LastRegeneration: fx.clock.Now().Add(-3 * time.Hour),
	}
	fx.cache.EXPECT().
		Load(mock.Anything, fx.userID).
		Return(cached, nil)

	fx.manager.Initialize(ctx)

	lives, loaded, lastErr := fx.manager.Snapshot()
	require.True(t, loaded)
	assert.Equal(t, "could not reach the lives service, using local data", lastErr)
	assert.Equal(t, 2, lives.CurrentLives)
	assert.Equal(t, cached.LastRegeneration, lives.LastRegeneration)
}

func TestManager_Initialize_FactoryDefaultsWhenAllFail(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(nil, repository.ErrRemoteUnavailable)
	fx.cache.EXPECT().
		Load(mock.Anything, fx.userID).
		Return(nil, repository.ErrSnapshotNotFound)

	fx.manager.Initialize(ctx)

	lives, loaded, lastErr := fx.manager.Snapshot()
	require.True(t, loaded)
	assert.NotEmpty(t, lastErr)
	assert.Equal(t, 5, lives.CurrentLives)
	assert.Equal(t, 5, lives.MaxLives)
	assert.True(t, fx.manager.CanAccessCourses())
}

func TestManager_Initialize_Idempotent(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil).
		Once()

	fx.manager.Initialize(ctx)
	fx.manager.Initialize(ctx)

	_, loaded, _ := fx.manager.Snapshot()
	assert.True(t, loaded)
}

func TestManager_LoseLives_AdoptsServerCounts(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.remote.EXPECT().
		ReportLoss(mock.Anything, fx.userID, 1).
		Return(&repository.RemoteLives{RemainingLives: 4, TotalLives: 5}, nil)

	quizID := int64(42)
	err := fx.manager.LoseLives(ctx, &usecase.LossInput{
		Amount: 1,
		Reason: "quiz failure",
		QuizID: &quizID,
	})
	require.NoError(t, err)

	lives, _, lastErr := fx.manager.Snapshot()
	assert.Empty(t, lastErr)
	assert.Equal(t, 4, lives.CurrentLives)
	require.Len(t, lives.History, 1)
	assert.Equal(t, entity.HistoryLost, lives.History[0].Type)
	assert.Equal(t, 1, lives.History[0].Amount)
	assert.Equal(t, "quiz failure", lives.History[0].Reason)
	require.NotNil(t, lives.History[0].QuizID)
	assert.Equal(t, int64(42), *lives.History[0].QuizID)
}

func TestManager_LoseLives_RollsBackOnRejectedPush(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.remote.EXPECT().
		ReportLoss(mock.Anything, fx.userID, 1).
		Return(nil, errors.New("upstream 503"))

	err := fx.manager.LoseLives(ctx, &usecase.LossInput{Amount: 1, Reason: "quiz failure"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLossRejected.ErrorCode(), appErr.ErrorCode())

	lives, _, lastErr := fx.manager.Snapshot()
	assert.Equal(t, 5, lives.CurrentLives)
	assert.Empty(t, lives.History)
	assert.Equal(t, "life loss could not be recorded", lastErr)
}

func TestManager_LoseLives_RejectsInvalidAmount(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	err := fx.manager.LoseLives(ctx, &usecase.LossInput{Amount: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLossAmount)

	err = fx.manager.LoseLives(ctx, &usecase.LossInput{Amount: -2})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLossAmount)
}

func TestManager_LoseLives_RequiresLoadedSession(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	err := fx.manager.LoseLives(ctx, &usecase.LossInput{Amount: 1})
	assert.ErrorIs(t, err, domainerrors.ErrLivesNotLoaded)
}

func TestManager_CheckRegeneration_NoopInsideWindow(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 2, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.clock.Advance(23 * time.Hour)

	gained, ran := fx.manager.CheckRegeneration(ctx)
	assert.False(t, ran)
	assert.Zero(t, gained)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, 2, lives.CurrentLives)
}

func TestManager_CheckRegeneration_RestoresAfterInterval(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 2, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.clock.Advance(24 * time.Hour)

	gained, ran := fx.manager.CheckRegeneration(ctx)
	require.True(t, ran)
	assert.Equal(t, 3, gained) // clamped at the ceiling

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, 5, lives.CurrentLives)
	assert.Equal(t, fx.clock.Now(), lives.LastRegeneration)
	require.Len(t, lives.History, 1)
	assert.Equal(t, entity.HistoryRegenerated, lives.History[0].Type)
	assert.Equal(t, 3, lives.History[0].Amount)

	// The next window starts fresh.
	assert.Equal(t, 24*time.Hour, fx.manager.TimeUntilNextRegeneration())
}

func TestManager_RegenerateLives_ZeroGainStillResetsWindow(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.clock.Advance(25 * time.Hour)

	gained, ran := fx.manager.CheckRegeneration(ctx)
	require.True(t, ran)
	assert.Zero(t, gained)

	lives, _, _ := fx.manager.Snapshot()
	assert.Empty(t, lives.History)
	assert.Equal(t, fx.clock.Now(), lives.LastRegeneration)
}

func TestManager_Reconcile_RemoteWins(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 4, TotalLives: 5}, nil).
		Once()
	fx.manager.Initialize(ctx)

	// The server regenerated behind our back; reconciliation adopts it.
	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil).
		Once()

	fx.manager.Reconcile(ctx)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, 5, lives.CurrentLives)
	require.Len(t, lives.History, 1)
	assert.Equal(t, entity.HistoryGained, lives.History[0].Type)
	assert.Equal(t, 1, lives.History[0].Amount)
	assert.Equal(t, "remote reconciliation", lives.History[0].Reason)
}

func TestManager_Reconcile_CleanLeavesStateAlone(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 4, TotalLives: 5}, nil).
		Twice()
	fx.manager.Initialize(ctx)

	fx.manager.Reconcile(ctx)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, 4, lives.CurrentLives)
	assert.Empty(t, lives.History)
}

func TestManager_Reconcile_FetchFailureLeavesStateAlone(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 4, TotalLives: 5}, nil).
		Once()
	fx.manager.Initialize(ctx)

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(nil, repository.ErrRemoteUnavailable).
		Once()

	fx.manager.Reconcile(ctx)

	lives, _, _ := fx.manager.Snapshot()
	assert.Equal(t, 4, lives.CurrentLives)
}

func TestManager_ResetLives_RestoresDefaultsAndClearsCache(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 1, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.cache.EXPECT().
		Delete(mock.Anything, fx.userID).
		Return(nil)

	fx.manager.ResetLives(ctx)

	lives, loaded, lastErr := fx.manager.Snapshot()
	assert.True(t, loaded)
	assert.Empty(t, lastErr)
	assert.Equal(t, 5, lives.CurrentLives)
	assert.Empty(t, lives.History)
}

func TestManager_CanAccessCourses_BlockedWhenEmpty(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 0, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	assert.False(t, fx.manager.CanAccessCourses())
}

func TestManager_StartStop_DrainsLoop(t *testing.T) {
	fx := createTestManager(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 5, TotalLives: 5}, nil)
	fx.manager.Initialize(ctx)

	fx.manager.Start(ctx)
	fx.manager.Stop()

	// A second Stop on a stopped manager must not hang or panic.
	fx.manager.Stop()
}

func TestManager_StopBeforeStart_PreventsLoop(t *testing.T) {
	fx := createTestManager(t)
	ctx := context.Background()

	// A sign-out can land between manager creation and Start. Stop must win
	// that race: the later Start is a no-op and no loop is left behind.
	fx.manager.Stop()
	fx.manager.Start(ctx)
	fx.manager.Stop()
}
