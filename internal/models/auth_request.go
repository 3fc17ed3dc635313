package models

// RegisterRequest is the body for user registration. Passwords are capped
// at 72 bytes, the bcrypt input limit.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest is the body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
