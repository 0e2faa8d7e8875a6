// Package service declares domain-level service boundaries implemented by
// the infra layer.
package service

import (
	"context"
)

// LivesEvent represents one lives mutation, published for downstream
// consumers (analytics, ranking, streak services).
type LivesEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	UserID         string `json:"user_id"`
	Type           string `json:"type"` // lost | gained | regenerated | reset
	Amount         int    `json:"amount"`
	RemainingLives int    `json:"remaining_lives"`
	MaxLives       int    `json:"max_lives"`
	Reason         string `json:"reason,omitempty"`
	QuizID         *int64 `json:"quiz_id,omitempty"`
	CourseID       *int64 `json:"course_id,omitempty"`
	OccurredAt     string `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing lives events to a
// message queue.
type EventPublisher interface {
	// PublishLivesEvent publishes a lives mutation event for async processing
	PublishLivesEvent(ctx context.Context, event *LivesEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
