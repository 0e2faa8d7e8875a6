// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// LivesEventReset is the event type published when a user's lives are
// reset to factory defaults; the remaining types mirror entity.HistoryType.
const LivesEventReset = "reset"
