package entities

import "time"

// Post statuses
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// Post represents a blog post entity in the database
type Post struct {
	ID        string    `json:"id"` // UUID
	Title     string    `json:"title"`
	Slug      string    `json:"slug"` // unique, used in public URLs
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Status    string    `json:"status"` // "draft" or "published"
	Author    string    `json:"author"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
