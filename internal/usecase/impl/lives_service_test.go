package impl

import (
	"context"
	"testing"

	"hearts/internal/domain/entity"
	"hearts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// livesServiceFixtures holds all test dependencies for service tests.
type livesServiceFixtures struct {
	service *livesService
	livesManagerFixtures
}

func createTestLivesService(t *testing.T) livesServiceFixtures {
	fx := createTestManager(t)

	srv := &livesService{
		deps: managerDeps{
			remote:      fx.remote,
			cache:       fx.cache,
			history:     fx.history,
			publisher:   fx.publisher,
			metrics:     noopMetrics{},
			cfg:         newTestLivesConfig(),
			logger:      newDiscardLogger(),
			topicPrefix: "lives",
			now:         fx.clock.Now,
		},
		rootCtx:  context.Background(),
		logger:   newDiscardLogger(),
		history:  fx.history,
		managers: make(map[uuid.UUID]*Manager),
	}

	return livesServiceFixtures{
		service:              srv,
		livesManagerFixtures: fx,
	}
}

func TestLivesService_Snapshot_InitializesSessionOnce(t *testing.T) {
	fx := createTestLivesService(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 3, TotalLives: 5}, nil).
		Once()

	first, err := fx.service.Snapshot(ctx, fx.userID)
	require.NoError(t, err)
	require.True(t, first.IsLoaded)
	assert.Equal(t, 3, first.UserLives.CurrentLives)

	// The second touch reuses the established session, no new fetch.
	second, err := fx.service.Snapshot(ctx, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, 3, second.UserLives.CurrentLives)

	require.NoError(t, fx.service.EndSession(ctx, fx.userID))
}

func TestLivesService_EndSession_StartsFreshNextTouch(t *testing.T) {
	fx := createTestLivesService(t)
	fx.allowBestEffortWrites()
	ctx := context.Background()

	fx.remote.EXPECT().
		Fetch(mock.Anything, fx.userID).
		Return(&repository.RemoteLives{RemainingLives: 3, TotalLives: 5}, nil).
		Twice()

	_, err := fx.service.Snapshot(ctx, fx.userID)
	require.NoError(t, err)

	require.NoError(t, fx.service.EndSession(ctx, fx.userID))

	// A new session re-initializes from the remote.
	_, err = fx.service.Snapshot(ctx, fx.userID)
	require.NoError(t, err)

	require.NoError(t, fx.service.EndSession(ctx, fx.userID))
}

func TestLivesService_EndSession_UnknownUserIsNoop(t *testing.T) {
	fx := createTestLivesService(t)
	ctx := context.Background()

	assert.NoError(t, fx.service.EndSession(ctx, uuid.New()))
}

func TestLivesService_History_CapsLimit(t *testing.T) {
	fx := createTestLivesService(t)
	ctx := context.Background()

	entries := []*entity.HistoryEntry{
		{ID: uuid.New(), Type: entity.HistoryLost, Amount: 1},
	}

	// Requests beyond the configured bound are capped at it.
	fx.history.EXPECT().
		ListByUser(ctx, fx.userID, 50).
		Return(entries, nil).
		Twice()

	got, err := fx.service.History(ctx, fx.userID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = fx.service.History(ctx, fx.userID, 500)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLivesService_History_EmptyWhenNoneRecorded(t *testing.T) {
	fx := createTestLivesService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		ListByUser(ctx, fx.userID, 10).
		Return(nil, repository.ErrHistoryNotFound)

	got, err := fx.service.History(ctx, fx.userID, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
