package service

import "context"

// NotificationService pushes user-facing notifications. Hearts keeps no
// device registry; clients subscribe themselves to their per-user topic and
// the service addresses that topic only.
type NotificationService interface {
	// SendToTopic sends a push notification to every subscriber of a topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
