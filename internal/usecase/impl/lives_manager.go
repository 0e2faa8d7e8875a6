// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hearts/config"
	deliverycontext "hearts/internal/delivery/context"
	"hearts/internal/domain/constants"
	"hearts/internal/domain/entity"
	domainerrors "hearts/internal/domain/errors"
	"hearts/internal/domain/repository"
	"hearts/internal/domain/service"
	"hearts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// managerDeps bundles the collaborators shared by every per-user manager.
type managerDeps struct {
	remote      repository.LivesRemote
	cache       repository.LivesCache
	history     repository.HistoryRepository
	publisher   service.EventPublisher
	notifier    service.NotificationService // nil when Firebase is not configured
	metrics     service.SyncMetrics
	cfg         *config.LivesConfig
	logger      *slog.Logger
	topicPrefix string
	now         func() time.Time
}

// Manager owns the lives state machine for one signed-in user: the state
// store, the sync engine and the regeneration clock. It is created on the
// first authenticated touch and discarded on sign-out. A mutex serializes
// state transitions; remote I/O happens outside the lock, so a loss push in
// flight may race a reconciliation tick. The remote value always wins and
// the overwrite is idempotent, so the next pass corrects any lost update.
type Manager struct {
	userID uuid.UUID
	deps   managerDeps

	mu       sync.Mutex
	state    *entity.UserLives
	isLoaded bool
	lastErr  string

	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// NewManager builds a manager holding factory-default state. Initialize
// must run before the state is served.
func NewManager(userID uuid.UUID, deps managerDeps) *Manager {
	if deps.now == nil {
		deps.now = time.Now
	}

	return &Manager{
		userID: userID,
		deps:   deps,
		state:  entity.NewUserLives(deps.cfg.MaxLives, deps.now()),
		done:   make(chan struct{}),
	}
}

// Initialize loads state remote-first, falling back to the cached snapshot,
// falling back to the factory defaults already in place. It always ends
// loaded; calling it again on an established session is a no-op.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isLoaded {
		return
	}

	if err := m.loadFromRemoteLocked(ctx); err != nil {
		m.lastErr = "could not reach the lives service, using local data"
		m.log(ctx).Warn("Remote lives load failed, falling back to cache",
			slog.Any("error", err), slog.Any("user_id", m.userID))

		if err := m.loadFromCacheLocked(ctx); err != nil {
			m.log(ctx).Warn("Cached lives load failed, keeping factory defaults",
				slog.Any("error", err), slog.Any("user_id", m.userID))
		}
	}

	m.isLoaded = true
}

// loadFromRemoteLocked fetches the authoritative counts, replaces the
// in-memory state wholesale and writes the snapshot back to the cache.
func (m *Manager) loadFromRemoteLocked(ctx context.Context) error {
	remote, err := m.deps.remote.Fetch(ctx, m.userID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch remote lives")
	}

	now := m.deps.now()
	loaded := entity.NewUserLives(m.deps.cfg.MaxLives, now)
	loaded.SetCount(remote.RemainingLives, remote.TotalLives)
	loaded.LastRegeneration = m.deriveLastRegeneration(remote, now)
	loaded.History = m.state.History

	m.state = loaded
	m.lastErr = ""
	m.persist(ctx, loaded.Clone())

	return nil
}

// loadFromCacheLocked restores the last persisted snapshot. A missing or
// corrupt snapshot is not an error worth surfacing; defaults stay in place.
func (m *Manager) loadFromCacheLocked(ctx context.Context) error {
	cached, err := m.deps.cache.Load(ctx, m.userID)
	if err != nil {
		return errors.Wrap(err, "failed to load cached lives")
	}

	cached.Clamp()
	m.state = cached

	return nil
}

// deriveLastRegeneration maps the upstream fields onto the window start:
// resetTime is the server's statement of when the window ends, so the start
// is one interval earlier; lastDamageAt approximates it; absent both, the
// window opens now.
func (m *Manager) deriveLastRegeneration(remote *repository.RemoteLives, now time.Time) time.Time {
	switch {
	case remote.ResetTime != nil:
		return remote.ResetTime.Add(-m.deps.cfg.RegenerationInterval)
	case remote.LastDamageAt != nil:
		return *remote.LastDamageAt
	default:
		return now
	}
}

// LoseLives is the single mutating entry point for quiz failures. The local
// count is decremented optimistically, the loss is pushed upstream exactly
// once, and on success the server's counts replace the guess. On failure the
// pre-call state is restored and the error propagates: under-counting a loss
// would unlock gated content incorrectly, over-counting would wrongly block.
func (m *Manager) LoseLives(ctx context.Context, input *usecase.LossInput) error {
	if input.Amount <= 0 {
		return domainerrors.ErrInvalidLossAmount
	}

	m.mu.Lock()
	if !m.isLoaded {
		m.mu.Unlock()

		return domainerrors.ErrLivesNotLoaded
	}

	snapshot := m.state.Clone()
	m.state.CurrentLives -= input.Amount
	m.state.Clamp()
	m.mu.Unlock()

	remote, err := m.deps.remote.ReportLoss(ctx, m.userID, input.Amount)
	if err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.lastErr = "life loss could not be recorded"
		m.mu.Unlock()

		m.deps.metrics.RecordLossPush(false)
		m.deps.metrics.RecordRollback()
		m.log(ctx).Error("Life loss push failed, rolled back",
			slog.Any("error", err), slog.Any("user_id", m.userID), slog.Int("amount", input.Amount))

		return domainerrors.ErrLossRejected.WrapMessage(err.Error())
	}

	now := m.deps.now()
	entry := entity.HistoryEntry{
		ID:        uuid.New(),
		Type:      entity.HistoryLost,
		Amount:    input.Amount,
		Reason:    input.Reason,
		Timestamp: now,
		QuizID:    input.QuizID,
		CourseID:  input.CourseID,
	}

	m.mu.Lock()
	m.state.SetCount(remote.RemainingLives, remote.TotalLives)
	m.state.Record(entry, m.deps.cfg.HistoryLimit)
	m.lastErr = ""
	current := m.state.Clone()
	m.mu.Unlock()

	m.deps.metrics.RecordLossPush(true)
	m.persist(ctx, current)
	m.audit(ctx, &entry)
	m.publish(ctx, string(entity.HistoryLost), entry, current)

	m.log(ctx).Info("Lives lost",
		slog.Any("user_id", m.userID), slog.Int("amount", input.Amount),
		slog.Int("remaining", current.CurrentLives))

	return nil
}

// CheckRegeneration applies the regeneration rule when the interval has
// elapsed. Returns the lives gained and whether a regeneration ran at all.
func (m *Manager) CheckRegeneration(ctx context.Context) (int, bool) {
	m.mu.Lock()
	now := m.deps.now()
	if !m.isLoaded || !m.state.RegenerationDue(now, m.deps.cfg.RegenerationInterval) {
		m.mu.Unlock()

		return 0, false
	}
	m.mu.Unlock()

	return m.RegenerateLives(ctx), true
}

// RegenerateLives restores up to livesPerRegeneration lives, clamped at the
// ceiling, and opens a fresh window. A zero-gain pass still resets the
// window but is not recorded in history.
func (m *Manager) RegenerateLives(ctx context.Context) int {
	m.mu.Lock()
	now := m.deps.now()
	before := m.state.CurrentLives
	m.state.CurrentLives += m.deps.cfg.LivesPerRegeneration
	m.state.Clamp()
	gained := m.state.CurrentLives - before
	m.state.LastRegeneration = now

	var entry entity.HistoryEntry
	if gained > 0 {
		entry = entity.HistoryEntry{
			ID:        uuid.New(),
			Type:      entity.HistoryRegenerated,
			Amount:    gained,
			Reason:    "daily regeneration",
			Timestamp: now,
		}
		m.state.Record(entry, m.deps.cfg.HistoryLimit)
	}
	current := m.state.Clone()
	m.mu.Unlock()

	m.deps.metrics.RecordRegeneration(gained)
	m.persist(ctx, current)

	if gained > 0 {
		m.audit(ctx, &entry)
		m.publish(ctx, string(entity.HistoryRegenerated), entry, current)
		m.notifyIfFull(ctx, current)
		m.log(ctx).Info("Lives regenerated",
			slog.Any("user_id", m.userID), slog.Int("gained", gained),
			slog.Int("current", current.CurrentLives))
	}

	return gained
}

// Reconcile re-fetches the authoritative counts and overwrites local drift.
// Failures are logged and left for the next tick; the remote value always
// wins so server-side regeneration and multi-device damage converge here.
func (m *Manager) Reconcile(ctx context.Context) {
	m.mu.Lock()
	loaded := m.isLoaded
	m.mu.Unlock()
	if !loaded {
		return
	}

	remote, err := m.deps.remote.Fetch(ctx, m.userID)
	if err != nil {
		m.deps.metrics.RecordReconcile("error")
		m.log(ctx).Warn("Lives reconciliation fetch failed",
			slog.Any("error", err), slog.Any("user_id", m.userID))

		return
	}

	now := m.deps.now()

	m.mu.Lock()
	drift := remote.RemainingLives - m.state.CurrentLives
	if drift == 0 && remote.TotalLives == m.state.MaxLives {
		m.mu.Unlock()
		m.deps.metrics.RecordReconcile("clean")

		return
	}

	m.state.SetCount(remote.RemainingLives, remote.TotalLives)
	if derived := m.deriveLastRegeneration(remote, now); derived.After(m.state.LastRegeneration) {
		// The window start only ever advances; stale upstream hints are ignored.
		m.state.LastRegeneration = derived
	}

	var entry entity.HistoryEntry
	if drift != 0 {
		entry = entity.HistoryEntry{
			ID:        uuid.New(),
			Timestamp: now,
			Reason:    "remote reconciliation",
		}
		if drift > 0 {
			entry.Type = entity.HistoryGained
			entry.Amount = drift
		} else {
			entry.Type = entity.HistoryLost
			entry.Amount = -drift
		}
		m.state.Record(entry, m.deps.cfg.HistoryLimit)
	}
	current := m.state.Clone()
	m.mu.Unlock()

	m.deps.metrics.RecordReconcile("drift")
	m.persist(ctx, current)
	if drift != 0 {
		m.audit(ctx, &entry)
		m.publish(ctx, string(entry.Type), entry, current)
	}

	m.log(ctx).Info("Lives reconciled against remote",
		slog.Any("user_id", m.userID), slog.Int("drift", drift),
		slog.Int("current", current.CurrentLives))
}

// ResetLives restores the factory defaults and clears the cache slot.
func (m *Manager) ResetLives(ctx context.Context) {
	m.mu.Lock()
	now := m.deps.now()
	m.state = entity.NewUserLives(m.deps.cfg.MaxLives, now)
	m.lastErr = ""
	current := m.state.Clone()
	m.mu.Unlock()

	if err := m.deps.cache.Delete(ctx, m.userID); err != nil {
		m.log(ctx).Warn("Failed to clear cached lives snapshot",
			slog.Any("error", err), slog.Any("user_id", m.userID))
	}

	m.publish(ctx, constants.LivesEventReset, entity.HistoryEntry{
		ID:        uuid.New(),
		Amount:    current.CurrentLives,
		Timestamp: now,
	}, current)
}

// Snapshot returns the reactive view served to UI consumers.
func (m *Manager) Snapshot() (*entity.UserLives, bool, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.Clone(), m.isLoaded, m.lastErr
}

// TimeUntilNextRegeneration reports the live countdown, clamped to zero.
func (m *Manager) TimeUntilNextRegeneration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.TimeUntilNextRegeneration(m.deps.now(), m.deps.cfg.RegenerationInterval)
}

// CanAccessCourses gates navigation into quiz and course content.
func (m *Manager) CanAccessCourses() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return !m.state.IsEmpty()
}

// Start launches the regeneration clock and the reconciliation loop. A
// manager that was already started or already stopped stays as it is, so a
// sign-out racing the first authenticated touch cannot leave an orphaned
// loop behind.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped || m.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	go m.run(runCtx)
}

// Stop cancels both timers and waits for the loop to drain, so no orphaned
// tick mutates state after the session is gone. Stopping twice, or before
// Start ever ran, is safe.
func (m *Manager) Stop() {
	m.mu.Lock()
	m.stopped = true
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-m.done
}

// run drives the two recurring timers until the session context ends.
func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	regenTicker := time.NewTicker(m.deps.cfg.RegenerationCheckInterval)
	defer regenTicker.Stop()
	reconcileTicker := time.NewTicker(m.deps.cfg.ReconcileInterval)
	defer reconcileTicker.Stop()

	// Evaluate the window once on startup, before the first tick.
	m.CheckRegeneration(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-regenTicker.C:
			m.CheckRegeneration(ctx)
		case <-reconcileTicker.C:
			m.Reconcile(ctx)
		}
	}
}

// persist writes the snapshot to the cache. Best-effort: the cache is a
// fallback, so failures are logged, never surfaced.
func (m *Manager) persist(ctx context.Context, lives *entity.UserLives) {
	if err := m.deps.cache.Save(ctx, m.userID, lives); err != nil {
		m.log(ctx).Warn("Failed to persist lives snapshot",
			slog.Any("error", err), slog.Any("user_id", m.userID))
	}
}

// audit appends the entry to the durable history log and trims it to the
// configured bound. Best-effort like persist.
func (m *Manager) audit(ctx context.Context, entry *entity.HistoryEntry) {
	if err := m.deps.history.Append(ctx, m.userID, entry); err != nil {
		m.log(ctx).Warn("Failed to append lives history",
			slog.Any("error", err), slog.Any("user_id", m.userID))

		return
	}
	if err := m.deps.history.TrimToLatest(ctx, m.userID, m.deps.cfg.HistoryLimit); err != nil {
		m.log(ctx).Warn("Failed to trim lives history",
			slog.Any("error", err), slog.Any("user_id", m.userID))
	}
}

// publish emits a lives event for downstream services. Best-effort.
func (m *Manager) publish(ctx context.Context, eventType string, entry entity.HistoryEntry, current *entity.UserLives) {
	event := &service.LivesEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		UserID:         m.userID.String(),
		Type:           eventType,
		Amount:         entry.Amount,
		RemainingLives: current.CurrentLives,
		MaxLives:       current.MaxLives,
		Reason:         entry.Reason,
		QuizID:         entry.QuizID,
		CourseID:       entry.CourseID,
		OccurredAt:     entry.Timestamp.UTC().Format(time.RFC3339),
	}

	if err := m.deps.publisher.PublishLivesEvent(ctx, event); err != nil {
		m.log(ctx).Warn("Failed to publish lives event",
			slog.Any("error", err), slog.Any("user_id", m.userID), slog.String("type", eventType))
	}
}

// notifyIfFull pushes a "lives are full" notification to the user's topic
// once regeneration reaches the ceiling.
func (m *Manager) notifyIfFull(ctx context.Context, current *entity.UserLives) {
	if m.deps.notifier == nil || !current.IsFull() {
		return
	}

	topic := m.deps.topicPrefix + "-" + m.userID.String()
	err := m.deps.notifier.SendToTopic(ctx, topic,
		"Your lives are back!",
		"All lives have regenerated. Jump back into your courses.",
		map[string]string{"type": "lives_regenerated"},
	)
	if err != nil {
		m.log(ctx).Warn("Failed to send regeneration notification",
			slog.Any("error", err), slog.Any("user_id", m.userID))
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the manager's logger.
func (m *Manager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.deps.logger)
}
