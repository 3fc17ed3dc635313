package models

// ResolutionState identifies the terminal or pending state of a redirect
// resolution.
type ResolutionState string

const (
	StateNotFound         ResolutionState = "not_found"
	StateDeactivated      ResolutionState = "deactivated"
	StatePasswordRequired ResolutionState = "password_required"
	StateRedirecting      ResolutionState = "redirecting"
	StateFailed           ResolutionState = "failed"
)

// ResolutionOutcome is the result of resolving a short code. OriginalURL is
// only populated in the Redirecting state; by then a click has been recorded
// and the caller is responsible for performing the actual navigation.
type ResolutionOutcome struct {
	State       ResolutionState `json:"state"`
	ShortCode   string          `json:"short_code"`
	OriginalURL string          `json:"original_url,omitempty"`
	Attempts    int             `json:"attempts,omitempty"` // failed password attempts this request cycle
}
