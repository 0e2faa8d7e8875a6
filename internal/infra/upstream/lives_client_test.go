package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hearts/config"
	"hearts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetrics struct{}

func (stubMetrics) RecordLossPush(bool)                   {}
func (stubMetrics) RecordRollback()                       {}
func (stubMetrics) RecordRegeneration(int)                {}
func (stubMetrics) RecordReconcile(string)                {}
func (stubMetrics) RecordUpstreamLatency(string, float64) {}

func newTestClient(t *testing.T, baseURL string) repository.LivesRemote {
	t.Helper()

	client, err := NewLivesClient(ClientParams{
		Cfg: &config.Config{
			Upstream: &config.UpstreamConfig{
				BaseURL:           baseURL,
				ServiceToken:      "service-token",
				Timeout:           time.Second,
				RequestsPerSecond: 100,
				Burst:             10,
			},
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: stubMetrics{},
	})
	require.NoError(t, err)

	return client
}

func TestLivesClient_Fetch(t *testing.T) {
	userID := uuid.New()
	lastDamage := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/lives", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
		assert.Equal(t, userID.String(), r.Header.Get("X-User-Id"))

		json.NewEncoder(w).Encode(map[string]any{
			"remainingLives": 3,
			"totalLives":     5,
			"lastDamageAt":   lastDamage.Format(time.RFC3339),
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	remote, err := client.Fetch(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, remote.RemainingLives)
	assert.Equal(t, 5, remote.TotalLives)
	require.NotNil(t, remote.LastDamageAt)
	assert.True(t, remote.LastDamageAt.Equal(lastDamage))
	assert.Nil(t, remote.ResetTime)
}

func TestLivesClient_ReportLoss(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/lives", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body["amount"])

		json.NewEncoder(w).Encode(map[string]any{
			"remainingLives": 1,
			"totalLives":     5,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	remote, err := client.ReportLoss(context.Background(), userID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.RemainingLives)
	assert.Equal(t, 5, remote.TotalLives)
}

func TestLivesClient_ServerErrorIsRemoteUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Fetch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRemoteUnavailable)
}

func TestLivesClient_MalformedBodyIsRemoteUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Fetch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRemoteUnavailable)
}

func TestLivesClient_RequiresBaseURL(t *testing.T) {
	_, err := NewLivesClient(ClientParams{
		Cfg:     &config.Config{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: stubMetrics{},
	})
	assert.Error(t, err)
}
