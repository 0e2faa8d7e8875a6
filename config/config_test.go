package config

import (
	"testing"
	"time"
)

func TestLivesConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &LivesConfig{}
	cfg.ApplyDefaults()

	if cfg.MaxLives != 10 {
		t.Fatalf("MaxLives = %d, want 10", cfg.MaxLives)
	}
	if cfg.RegenerationInterval != 24*time.Hour {
		t.Fatalf("RegenerationInterval = %s, want 24h", cfg.RegenerationInterval)
	}
	if cfg.LivesPerRegeneration != 10 {
		t.Fatalf("LivesPerRegeneration = %d, want 10", cfg.LivesPerRegeneration)
	}
	if cfg.LossPerQuizFailure != 1 {
		t.Fatalf("LossPerQuizFailure = %d, want 1", cfg.LossPerQuizFailure)
	}
	if cfg.RegenerationCheckInterval != time.Minute {
		t.Fatalf("RegenerationCheckInterval = %s, want 1m", cfg.RegenerationCheckInterval)
	}
	if cfg.ReconcileInterval != 5*time.Minute {
		t.Fatalf("ReconcileInterval = %s, want 5m", cfg.ReconcileInterval)
	}
	if cfg.HistoryLimit != 50 {
		t.Fatalf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
}

func TestLivesConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &LivesConfig{
		MaxLives:             5,
		RegenerationInterval: 8 * time.Hour,
		LivesPerRegeneration: 2,
		LossPerQuizFailure:   3,
		HistoryLimit:         20,
	}
	cfg.ApplyDefaults()

	if cfg.MaxLives != 5 {
		t.Fatalf("MaxLives = %d, want 5", cfg.MaxLives)
	}
	if cfg.RegenerationInterval != 8*time.Hour {
		t.Fatalf("RegenerationInterval = %s, want 8h", cfg.RegenerationInterval)
	}
	if cfg.LivesPerRegeneration != 2 {
		t.Fatalf("LivesPerRegeneration = %d, want 2", cfg.LivesPerRegeneration)
	}
	if cfg.LossPerQuizFailure != 3 {
		t.Fatalf("LossPerQuizFailure = %d, want 3", cfg.LossPerQuizFailure)
	}
	if cfg.HistoryLimit != 20 {
		t.Fatalf("HistoryLimit = %d, want 20", cfg.HistoryLimit)
	}
}
