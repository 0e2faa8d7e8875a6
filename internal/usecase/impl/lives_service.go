package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hearts/config"
	"hearts/internal/domain/entity"
	"hearts/internal/domain/repository"
	"hearts/internal/domain/service"
	"hearts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTopicPrefix = "lives"

// LivesServiceParams holds dependencies for the lives service, injected by Fx.
type LivesServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Cfg       *config.Config
	Logger    *slog.Logger
	Remote    repository.LivesRemote
	Cache     repository.LivesCache
	History   repository.HistoryRepository
	Publisher service.EventPublisher
	Notifier  service.NotificationService `optional:"true"`
	Metrics   service.SyncMetrics
}

// livesService implements the LivesUsecase interface. It keeps one Manager
// per signed-in user, created lazily on the first authenticated touch and
// torn down on sign-out or process shutdown.
type livesService struct {
	deps    managerDeps
	rootCtx context.Context
	logger  *slog.Logger
	history repository.HistoryRepository

	mu       sync.Mutex
	managers map[uuid.UUID]*Manager
}

// NewLivesService is the constructor for livesService.
func NewLivesService(params LivesServiceParams) usecase.LivesUsecase {
	topicPrefix := defaultTopicPrefix
	if params.Cfg.Firebase != nil && params.Cfg.Firebase.TopicPrefix != "" {
		topicPrefix = params.Cfg.Firebase.TopicPrefix
	}

	srv := &livesService{
		deps: managerDeps{
			remote:      params.Remote,
			cache:       params.Cache,
			history:     params.History,
			publisher:   params.Publisher,
			notifier:    params.Notifier,
			metrics:     params.Metrics,
			cfg:         params.Cfg.Lives,
			logger:      params.Logger,
			topicPrefix: topicPrefix,
			now:         time.Now,
		},
		rootCtx:  params.Ctx,
		logger:   params.Logger,
		history:  params.History,
		managers: make(map[uuid.UUID]*Manager),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			srv.stopAll()

			return nil
		},
	})

	return srv
}

// manager returns the user's session manager, creating and initializing it
// on first touch. Initialize is idempotent, so re-entrant calls (every
// request touches it, much like every screen focus) are safe.
func (srv *livesService) manager(ctx context.Context, userID uuid.UUID) *Manager {
	srv.mu.Lock()
	mgr, ok := srv.managers[userID]
	if !ok {
		mgr = NewManager(userID, srv.deps)
		srv.managers[userID] = mgr
	}
	srv.mu.Unlock()

	mgr.Initialize(ctx)
	if !ok {
		// Timers outlive the request; they stop on sign-out or shutdown.
		mgr.Start(srv.rootCtx)
		srv.logger.Info("Lives session started", slog.Any("user_id", userID))
	}

	return mgr
}

// Snapshot returns the current lives state, initializing the session if needed.
func (srv *livesService) Snapshot(ctx context.Context, userID uuid.UUID) (*usecase.LivesSnapshot, error) {
	return snapshotOf(srv.manager(ctx, userID)), nil
}

// LoseLives pushes a life loss upstream; see Manager.LoseLives for the
// rollback contract.
func (srv *livesService) LoseLives(ctx context.Context, userID uuid.UUID, input *usecase.LossInput) (*usecase.LivesSnapshot, error) {
	mgr := srv.manager(ctx, userID)
	if err := mgr.LoseLives(ctx, input); err != nil {
		return snapshotOf(mgr), err
	}

	return snapshotOf(mgr), nil
}

// RegenerateLives applies the regeneration rule if the window has elapsed.
func (srv *livesService) RegenerateLives(ctx context.Context, userID uuid.UUID) (*usecase.LivesSnapshot, int, error) {
	mgr := srv.manager(ctx, userID)
	gained, _ := mgr.CheckRegeneration(ctx)

	return snapshotOf(mgr), gained, nil
}

// ResetLives restores factory defaults for support and debugging surfaces.
func (srv *livesService) ResetLives(ctx context.Context, userID uuid.UUID) (*usecase.LivesSnapshot, error) {
	mgr := srv.manager(ctx, userID)
	mgr.ResetLives(ctx)

	return snapshotOf(mgr), nil
}

// TimeUntilNextRegeneration reports the countdown used by the blocking modal.
func (srv *livesService) TimeUntilNextRegeneration(ctx context.Context, userID uuid.UUID) (time.Duration, error) {
	return srv.manager(ctx, userID).TimeUntilNextRegeneration(), nil
}

// CanAccessCourses gates navigation into quiz and course content.
func (srv *livesService) CanAccessCourses(ctx context.Context, userID uuid.UUID) (bool, error) {
	return srv.manager(ctx, userID).CanAccessCourses(), nil
}

// History serves the persisted audit log, most recent first.
func (srv *livesService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 || limit > srv.deps.cfg.HistoryLimit {
		limit = srv.deps.cfg.HistoryLimit
	}

	entries, err := srv.history.ListByUser(ctx, userID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryNotFound) {
			return []*entity.HistoryEntry{}, nil
		}

		return nil, errors.Wrap(err, "failed to list lives history")
	}

	return entries, nil
}

// EndSession discards the user's manager on sign-out. The next touch starts
// a fresh session from factory defaults.
func (srv *livesService) EndSession(ctx context.Context, userID uuid.UUID) error {
	srv.mu.Lock()
	mgr, ok := srv.managers[userID]
	delete(srv.managers, userID)
	srv.mu.Unlock()

	if !ok {
		return nil
	}

	mgr.Stop()
	srv.logger.Info("Lives session ended", slog.Any("user_id", userID))

	return nil
}

// stopAll tears down every live session on shutdown.
func (srv *livesService) stopAll() {
	srv.mu.Lock()
	managers := make([]*Manager, 0, len(srv.managers))
	for _, mgr := range srv.managers {
		managers = append(managers, mgr)
	}
	srv.managers = make(map[uuid.UUID]*Manager)
	srv.mu.Unlock()

	for _, mgr := range managers {
		mgr.Stop()
	}
}

func snapshotOf(mgr *Manager) *usecase.LivesSnapshot {
	lives, loaded, lastErr := mgr.Snapshot()

	return &usecase.LivesSnapshot{
		UserLives: lives,
		IsLoaded:  loaded,
		Error:     lastErr,
	}
}
