package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hearts/config"
	mockRepo "hearts/internal/mocks/repository"
	mockSvc "hearts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLivesConfig() *config.LivesConfig {
	return &config.LivesConfig{
		MaxLives:                  5,
		RegenerationInterval:      24 * time.Hour,
		LivesPerRegeneration:      5,
		LossPerQuizFailure:        1,
		RegenerationCheckInterval: time.Hour,
		ReconcileInterval:         time.Hour,
		HistoryLimit:              50,
	}
}

// testClock is a controllable time source for window assertions.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// noopMetrics satisfies service.SyncMetrics without recording anything.
type noopMetrics struct{}

func (noopMetrics) RecordLossPush(bool)                  {}
func (noopMetrics) RecordRollback()                      {}
func (noopMetrics) RecordRegeneration(int)               {}
func (noopMetrics) RecordReconcile(string)               {}
func (noopMetrics) RecordUpstreamLatency(string, float64) {}

// livesManagerFixtures holds all test dependencies for manager tests.
type livesManagerFixtures struct {
	manager   *Manager
	userID    uuid.UUID
	remote    *mockRepo.MockLivesRemote
	cache     *mockRepo.MockLivesCache
	history   *mockRepo.MockHistoryRepository
	publisher *mockSvc.MockEventPublisher
	clock     *testClock
}

func createTestManager(t *testing.T) livesManagerFixtures {
	remote := mockRepo.NewMockLivesRemote(t)
	cache := mockRepo.NewMockLivesCache(t)
	history := mockRepo.NewMockHistoryRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	clock := newTestClock()
	userID := uuid.New()

	manager := NewManager(userID, managerDeps{
		remote:      remote,
		cache:       cache,
		history:     history,
		publisher:   publisher,
		metrics:     noopMetrics{},
		cfg:         newTestLivesConfig(),
		logger:      newDiscardLogger(),
		topicPrefix: "lives",
		now:         clock.Now,
	})

	return livesManagerFixtures{
		manager:   manager,
		userID:    userID,
		remote:    remote,
		cache:     cache,
		history:   history,
		publisher: publisher,
		clock:     clock,
	}
}

// allowBestEffortWrites registers optional expectations for the cache,
// audit log and event publisher so side-effect calls never fail a test that
// is not asserting on them.
func (fx livesManagerFixtures) allowBestEffortWrites() {
	fx.cache.EXPECT().Save(mock.Anything, fx.userID, mock.Anything).Return(nil).Maybe()
	fx.history.EXPECT().Append(mock.Anything, fx.userID, mock.Anything).Return(nil).Maybe()
	fx.history.EXPECT().TrimToLatest(mock.Anything, fx.userID, 50).Return(nil).Maybe()
	fx.publisher.EXPECT().PublishLivesEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}
