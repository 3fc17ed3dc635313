package apperrors

import "errors"

// Sentinel errors shared across services and controllers. Controllers map
// these to HTTP status codes; services wrap them with %w so callers can
// test with errors.Is.
var (
	ErrInvalidURL          = errors.New("invalid URL")
	ErrDuplicateCode       = errors.New("short code already taken")
	ErrGenerationExhausted = errors.New("failed to generate unique short code")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("access denied")
	ErrEmailTaken          = errors.New("user with this email already exists")
)
