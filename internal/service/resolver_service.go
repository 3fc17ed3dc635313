package service

import (
	"errors"
	"sync"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ResolverService drives the state machine behind /{code} visits:
// Resolving -> NotFound | Deactivated | PasswordRequired | Redirecting.
// Failure anywhere surfaces as the opaque Failed state; a visit is never
// partially redirected.
type ResolverService interface {
	Resolve(shortCode string, visit Visit) models.ResolutionOutcome
	SubmitPassword(shortCode, attempt string, visit Visit) models.ResolutionOutcome
}

type resolverService struct {
	linkRepo repository.LinkRepository
	recorder ClickRecorder

	// failed password attempts per code, pending a successful submit
	mu       sync.Mutex
	attempts map[string]int
}

// NewResolverService creates a new resolver service
func NewResolverService(linkRepo repository.LinkRepository, recorder ClickRecorder) ResolverService {
	return &resolverService{
		linkRepo: linkRepo,
		recorder: recorder,
		attempts: make(map[string]int),
	}
}

// Resolve looks up a code and either terminates (NotFound, Deactivated),
// parks on the password gate, or records a click and certifies the
// redirect target
func (s *resolverService) Resolve(shortCode string, visit Visit) models.ResolutionOutcome {
	link, err := s.linkRepo.FindByShortCode(shortCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return outcome(models.StateNotFound, shortCode)
	}
	if err != nil {
		return outcome(models.StateFailed, shortCode)
	}

	if !link.IsActive {
		return outcome(models.StateDeactivated, shortCode)
	}
	if link.HasPassword {
		return outcome(models.StatePasswordRequired, shortCode)
	}
	return s.redirect(link, visit)
}

// SubmitPassword checks a password attempt against the gate. A match
// proceeds to the redirect (recording the click); a mismatch stays in
// PasswordRequired with the attempt count bumped. No lockout.
func (s *resolverService) SubmitPassword(shortCode, attempt string, visit Visit) models.ResolutionOutcome {
	link, err := s.linkRepo.FindByShortCode(shortCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return outcome(models.StateNotFound, shortCode)
	}
	if err != nil {
		return outcome(models.StateFailed, shortCode)
	}

	if !link.IsActive {
		return outcome(models.StateDeactivated, shortCode)
	}
	if !link.HasPassword {
		// Gate was removed since the challenge was issued
		return s.redirect(link, visit)
	}

	if bcrypt.CompareHashAndPassword([]byte(*link.PasswordHash), []byte(attempt)) != nil {
		o := outcome(models.StatePasswordRequired, shortCode)
		o.Attempts = s.bumpAttempts(shortCode)
		return o
	}

	s.clearAttempts(shortCode)
	return s.redirect(link, visit)
}

// redirect records the click and certifies the destination. The outcome
// only becomes Redirecting once the click is durably recorded.
func (s *resolverService) redirect(link *entities.Link, visit Visit) models.ResolutionOutcome {
	if _, err := s.recorder.RecordClick(link.ShortCode, visit); err != nil {
		return outcome(models.StateFailed, link.ShortCode)
	}
	o := outcome(models.StateRedirecting, link.ShortCode)
	o.OriginalURL = link.OriginalURL
	return o
}

func (s *resolverService) bumpAttempts(shortCode string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[shortCode]++
	return s.attempts[shortCode]
}

func (s *resolverService) clearAttempts(shortCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, shortCode)
}

func outcome(state models.ResolutionState, shortCode string) models.ResolutionOutcome {
	return models.ResolutionOutcome{State: state, ShortCode: shortCode}
}
