// Package notification delivers push notifications through Firebase Cloud
// Messaging. Lives notifications fan out over per-user topics, so no device
// token bookkeeping happens here.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"hearts/config"
	"hearts/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// Params holds dependencies for the notification service, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Cfg    *config.Config
	Logger *slog.Logger
}

// New creates the Firebase notification service, or nil when Firebase is not
// configured. Callers treat a nil service as notifications disabled.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Cfg.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return nil, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToTopic sends a push notification to every device subscribed to a topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send topic notification: %w", err)
	}

	return nil
}
