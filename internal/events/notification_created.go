package events

import "time"

const NotificationCreatedTopic = "onboarding.notification.created.v1"

// NotificationCreatedEvent fans a persisted notification out to downstream
// delivery channels (mail, chat) via the outbox.
type NotificationCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	OccurredAt     time.Time `json:"occurred_at"`
}
