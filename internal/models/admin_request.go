package models

// CreateUserRequest represents the admin request to create a user account
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name,omitempty"`
	Role     string  `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUserRequest represents the admin request to update a user account.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}
