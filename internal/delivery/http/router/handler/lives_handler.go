package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hearts/config"
	"hearts/internal/delivery/http/response"
	"hearts/internal/domain/entity"
	"hearts/internal/usecase"
	"hearts/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LivesHandlerParams holds dependencies for LivesHandler, injected by Fx.
type LivesHandlerParams struct {
	fx.In

	LivesUC usecase.LivesUsecase
	Cfg     *config.Config
	Logger  *slog.Logger
}

// LivesHandler holds dependencies for lives-related handlers
type LivesHandler struct {
	livesUC usecase.LivesUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewLivesHandler is the constructor for LivesHandler
func NewLivesHandler(params LivesHandlerParams) *LivesHandler {
	return &LivesHandler{
		livesUC: params.LivesUC,
		cfg:     params.Cfg,
		logger:  params.Logger,
	}
}

// LoseLivesRequest represents the request body for reporting a life loss.
// Amount defaults to the configured per-failure loss when omitted.
type LoseLivesRequest struct {
	Amount   int    `json:"amount" validate:"omitempty,gte=1"`
	Reason   string `json:"reason" validate:"required"`
	QuizID   *int64 `json:"quiz_id"`
	CourseID *int64 `json:"course_id"`
}

// RegenerationResponse reports the countdown to the next regeneration.
type RegenerationResponse struct {
	MillisUntilNextRegeneration int64  `json:"millisUntilNextRegeneration"`
	NextRegenerationIn          string `json:"nextRegenerationIn"`
}

// AccessResponse reports whether gated content may be entered.
type AccessResponse struct {
	CanAccessCourses bool `json:"canAccessCourses"`
}

// RegenerateResponse pairs the snapshot with the lives granted by this call.
type RegenerateResponse struct {
	Snapshot *usecase.LivesSnapshot `json:"snapshot"`
	Gained   int                    `json:"gained"`
}

// GetDefaults returns the factory-default snapshot served to signed-out
// clients: full lives and a regeneration window opening now. Nothing is
// persisted and no session is created; sessions start on the first
// authenticated call.
func (h *LivesHandler) GetDefaults(c echo.Context) error {
	snapshot := &usecase.LivesSnapshot{
		UserLives: entity.NewUserLives(h.cfg.Lives.MaxLives, time.Now()),
		IsLoaded:  true,
	}

	return response.Success(c, http.StatusOK, snapshot, "Default lives retrieved successfully")
}

// GetLives returns the current lives snapshot
func (h *LivesHandler) GetLives(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.livesUC.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Lives retrieved successfully")
}

// LoseLives reports a life loss to the platform API
func (h *LivesHandler) LoseLives(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req LoseLivesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loss input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	amount := req.Amount
	if amount == 0 {
		amount = h.cfg.Lives.LossPerQuizFailure
	}

	input := &usecase.LossInput{
		Amount:   amount,
		Reason:   req.Reason,
		QuizID:   req.QuizID,
		CourseID: req.CourseID,
	}

	snapshot, err := h.livesUC.LoseLives(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Life loss recorded successfully")
}

// RegenerateLives applies the regeneration rule if the interval has elapsed
func (h *LivesHandler) RegenerateLives(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	snapshot, gained, err := h.livesUC.RegenerateLives(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegenerateResponse{
		Snapshot: snapshot,
		Gained:   gained,
	}, "Regeneration applied successfully")
}

// ResetLives restores the factory-default lives state
func (h *LivesHandler) ResetLives(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.livesUC.ResetLives(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Lives reset successfully")
}

// GetRegeneration returns the countdown to the next regeneration
func (h *LivesHandler) GetRegeneration(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	remaining, err := h.livesUC.TimeUntilNextRegeneration(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegenerationResponse{
		MillisUntilNextRegeneration: remaining.Milliseconds(),
		NextRegenerationIn:          util.FormatDuration(remaining),
	}, "Regeneration countdown retrieved successfully")
}

// GetAccess reports whether the user may enter gated content
func (h *LivesHandler) GetAccess(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	canAccess, err := h.livesUC.CanAccessCourses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AccessResponse{
		CanAccessCourses: canAccess,
	}, "Access retrieved successfully")
}

// GetHistory returns the persisted lives audit log, most recent first
func (h *LivesHandler) GetHistory(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
		}
		limit = parsed
	}

	entries, err := h.livesUC.History(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Lives history retrieved successfully")
}

// EndSession tears down the user's lives session on sign-out
func (h *LivesHandler) EndSession(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	if err := h.livesUC.EndSession(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session ended successfully"}, "Session ended successfully")
}

// getUserID extracts the user ID from the context
func (h *LivesHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
