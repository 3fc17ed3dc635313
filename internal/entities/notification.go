package entities

import "time"

// Notification types
const (
	NotificationMilestone = "milestone"
)

// Notification represents an owner-facing alert, e.g. a click milestone
type Notification struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user_id"`
	LinkID    *string   `json:"link_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
