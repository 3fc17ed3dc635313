package entities

import "time"

// Link represents a shortened link entity in the database
type Link struct {
	ID           string    `json:"id"` // UUID
	ShortCode    string    `json:"short_code"`
	OriginalURL  string    `json:"original_url"`
	OwnerID      *string   `json:"owner_id,omitempty"` // Pointer allows nil (for anonymous links), UUID
	Clicks       int       `json:"clicks"`
	IsActive     bool      `json:"is_active"`
	HasPassword  bool      `json:"has_password"`
	PasswordHash *string   `json:"-"` // bcrypt hash, never exposed in JSON
	CreatedAt    time.Time `json:"created_at"`
}
