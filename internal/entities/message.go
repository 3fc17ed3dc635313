package entities

import "time"

// Message statuses
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// Message represents a contact form submission
type Message struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"` // "unread" or "read"
	CreatedAt time.Time `json:"created_at"`
}
