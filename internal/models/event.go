package models

import "time"

// AnalyticsEvent is one usage-analytics data point (audit_start,
// audit_success, login, ...). Properties is a free-form JSON object.
type AnalyticsEvent struct {
	EventID    string    `json:"event_id"`
	UserID     *int64    `json:"user_id,omitempty"`
	Name       string    `json:"name"`
	Properties string    `json:"properties,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
