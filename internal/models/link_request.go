package models

// CreateLinkRequest represents the request body for creating a short link
type CreateLinkRequest struct {
	URL       string  `json:"url" binding:"required,url"` // Gin validation: required and must be valid URL
	ShortCode *string `json:"short_code,omitempty"`       // Optional custom short code
	Password  *string `json:"password,omitempty"`         // Optional password gate
}

// UpdateLinkRequest represents a partial update of a link.
// Nil fields are left untouched.
type UpdateLinkRequest struct {
	OriginalURL   *string `json:"original_url,omitempty"`
	ShortCode     *string `json:"short_code,omitempty"` // Re-validated for uniqueness
	IsActive      *bool   `json:"is_active,omitempty"`
	Password      *string `json:"password,omitempty"`       // Set or replace the password gate
	ClearPassword bool    `json:"clear_password,omitempty"` // Remove the password gate
}

// SubmitPasswordRequest represents the password attempt for a gated link
type SubmitPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}
