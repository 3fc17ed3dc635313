package models

// CreatePostRequest represents the admin request to create a blog post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug" binding:"required"`
	Content string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

// UpdatePostRequest represents a partial update of a blog post.
// Nil fields are left untouched.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Slug    *string `json:"slug,omitempty"`
	Content *string `json:"content,omitempty"`
	Excerpt *string `json:"excerpt,omitempty"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
}
