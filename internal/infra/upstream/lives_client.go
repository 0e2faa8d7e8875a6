// Package upstream implements the synchronization boundary against the
// platform API that owns the authoritative lives counts.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hearts/config"
	"hearts/internal/domain/repository"
	"hearts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRate    = 50.0
	defaultBurst   = 100
)

// ClientParams holds dependencies for the upstream client, injected by Fx.
type ClientParams struct {
	fx.In

	Cfg     *config.Config
	Logger  *slog.Logger
	Metrics service.SyncMetrics
}

// livesClient implements repository.LivesRemote over the platform's REST
// endpoints. It carries a service token; the acting user travels in the
// X-User-Id header.
type livesClient struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *slog.Logger
	metrics      service.SyncMetrics
}

// livesResponse mirrors the upstream payload for both endpoints. The
// optional timestamps arrive as ISO8601 strings.
type livesResponse struct {
	RemainingLives int        `json:"remainingLives"`
	TotalLives     int        `json:"totalLives"`
	LastDamageAt   *time.Time `json:"lastDamageAt,omitempty"`
	ResetTime      *time.Time `json:"resetTime,omitempty"`
}

type lossRequest struct {
	Amount int `json:"amount"`
}

// NewLivesClient is the constructor for livesClient.
func NewLivesClient(params ClientParams) (repository.LivesRemote, error) {
	cfg := params.Cfg.Upstream
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("upstream base URL must be configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRate
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &livesClient{
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		logger:       params.Logger,
		metrics:      params.Metrics,
	}, nil
}

// Fetch retrieves the authoritative lives state for a user.
func (c *livesClient) Fetch(ctx context.Context, userID uuid.UUID) (*repository.RemoteLives, error) {
	return c.do(ctx, http.MethodGet, userID, nil, "fetch")
}

// ReportLoss pushes a life-loss and returns the server's resulting counts.
func (c *livesClient) ReportLoss(ctx context.Context, userID uuid.UUID, amount int) (*repository.RemoteLives, error) {
	body, err := json.Marshal(lossRequest{Amount: amount})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return c.do(ctx, http.MethodDelete, userID, body, "report_loss")
}

// do performs one rate-limited call against the /lives endpoint and decodes
// the shared response shape.
func (c *livesClient) do(ctx context.Context, method string, userID uuid.UUID, body []byte, operation string) (*repository.RemoteLives, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "upstream rate limiter")
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/lives", reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	req.Header.Set("X-User-Id", userID.String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamLatency(operation, time.Since(start).Seconds())
	if err != nil {
		return nil, errors.Wrapf(repository.ErrRemoteUnavailable, "%s: %v", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream lives call failed",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
			slog.Any("user_id", userID),
		)

		return nil, errors.Wrapf(repository.ErrRemoteUnavailable, "%s: status %d", operation, resp.StatusCode)
	}

	var payload livesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(repository.ErrRemoteUnavailable, "%s: decode: %v", operation, err)
	}

	return &repository.RemoteLives{
		RemainingLives: payload.RemainingLives,
		TotalLives:     payload.TotalLives,
		LastDamageAt:   payload.LastDamageAt,
		ResetTime:      payload.ResetTime,
	}, nil
}
