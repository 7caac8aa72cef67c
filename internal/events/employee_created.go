package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

// EmployeeCreatedEvent is published by the account-provisioning service when
// a new hire is registered; the consumer bootstraps their onboarding journey.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
