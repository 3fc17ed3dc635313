package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"minilink/internal/apperrors"
	"minilink/internal/cache"
	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"

	"github.com/sethvargo/go-retry"
	"golang.org/x/crypto/bcrypt"
)

// Bound on generate-and-insert attempts before giving up with
// ErrGenerationExhausted
const maxGenerationAttempts = 5

// LinkService defines the interface for link business logic
type LinkService interface {
	CreateLink(req *models.CreateLinkRequest, ownerID *string, baseURL string) (*models.CreateLinkResponse, error)
	GetLink(shortCode string) (*entities.Link, error)
	GetLinkStats(shortCode string, ownerID *string) (*models.LinkStatsResponse, error)
	GetUserLinks(ownerID string) ([]*models.LinkStatsResponse, error)
	UpdateLink(id string, ownerID *string, req *models.UpdateLinkRequest) (*entities.Link, error)
	DeleteLink(id string, ownerID *string) error
}

type linkService struct {
	linkRepo repository.LinkRepository
	cache    cache.Cache
	ctx      context.Context
}

// NewLinkService creates a new link service. cacheClient may be nil; the
// service degrades gracefully without it.
func NewLinkService(linkRepo repository.LinkRepository, cacheClient cache.Cache) LinkService {
	svc := &linkService{
		linkRepo: linkRepo,
		ctx:      context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// validateURL performs basic URL-syntax validation and restricts schemes to
// http and https
func validateURL(raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidURL, raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes allowed", apperrors.ErrInvalidURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", apperrors.ErrInvalidURL)
	}
	return nil
}

// CreateLink creates a new short link. A supplied custom code is validated
// and used as-is; otherwise codes are generated and inserted under a bounded
// retry, since the unique index is the only authority on collisions.
func (s *linkService) CreateLink(req *models.CreateLinkRequest, ownerID *string, baseURL string) (*models.CreateLinkResponse, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		passwordHash = &hashStr
	}

	link := &entities.Link{
		OriginalURL:  req.URL,
		OwnerID:      ownerID,
		IsActive:     true,
		PasswordHash: passwordHash,
	}

	var created *entities.Link
	if req.ShortCode != nil && *req.ShortCode != "" {
		customCode := strings.TrimSpace(*req.ShortCode)
		if err := ValidateCustomShortCode(customCode); err != nil {
			return nil, err
		}

		link.ShortCode = customCode
		var err error
		created, err = s.linkRepo.Create(link)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateCode) {
				s.markCodeTaken(customCode)
			}
			return nil, err
		}
	} else {
		var err error
		created, err = s.createWithGeneratedCode(link)
		if err != nil {
			return nil, err
		}
	}

	s.markCodeTaken(created.ShortCode)

	return &models.CreateLinkResponse{
		ID:          created.ID,
		ShortCode:   created.ShortCode,
		OriginalURL: created.OriginalURL,
		ShortURL:    fmt.Sprintf("%s/%s", baseURL, created.ShortCode),
		HasPassword: created.HasPassword,
		IsActive:    created.IsActive,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// createWithGeneratedCode generates codes and inserts until the unique
// index accepts one, up to maxGenerationAttempts
func (s *linkService) createWithGeneratedCode(link *entities.Link) (*entities.Link, error) {
	var created *entities.Link

	backoff := retry.WithMaxRetries(maxGenerationAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(s.ctx, backoff, func(ctx context.Context) error {
		code, err := GenerateShortCode()
		if err != nil {
			return err
		}

		link.ShortCode = code
		created, err = s.linkRepo.Create(link)
		if errors.Is(err, apperrors.ErrDuplicateCode) {
			// Collision: retry with a fresh code
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, apperrors.ErrDuplicateCode) {
		return nil, fmt.Errorf("%w after %d attempts", apperrors.ErrGenerationExhausted, maxGenerationAttempts)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetLink retrieves a link by short code, trying the cache first
func (s *linkService) GetLink(shortCode string) (*entities.Link, error) {
	if s.cache != nil {
		var cached entities.Link
		if err := s.cache.GetJSON(s.ctx, linkCacheKey(shortCode), &cached); err == nil && cached.ID != "" {
			return &cached, nil
		}
	}

	link, err := s.linkRepo.FindByShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, linkCacheKey(shortCode), link, 1*time.Hour)
	}
	return link, nil
}

// GetLinkStats retrieves statistics for a link, enforcing ownership
func (s *linkService) GetLinkStats(shortCode string, ownerID *string) (*models.LinkStatsResponse, error) {
	link, err := s.linkRepo.FindByShortCode(shortCode)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(link, ownerID); err != nil {
		return nil, err
	}
	return linkStats(link), nil
}

// GetUserLinks retrieves all links for a user, newest first
func (s *linkService) GetUserLinks(ownerID string) ([]*models.LinkStatsResponse, error) {
	links, err := s.linkRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.LinkStatsResponse, len(links))
	for i := range links {
		responses[i] = linkStats(&links[i])
	}
	return responses, nil
}

// UpdateLink applies a partial update. A short code change is re-validated
// and re-checked for uniqueness like a create.
func (s *linkService) UpdateLink(id string, ownerID *string, req *models.UpdateLinkRequest) (*entities.Link, error) {
	link, err := s.linkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(link, ownerID); err != nil {
		return nil, err
	}

	oldCode := link.ShortCode

	if req.OriginalURL != nil {
		if err := validateURL(*req.OriginalURL); err != nil {
			return nil, err
		}
		link.OriginalURL = *req.OriginalURL
	}
	if req.ShortCode != nil && *req.ShortCode != link.ShortCode {
		newCode := strings.TrimSpace(*req.ShortCode)
		if err := ValidateCustomShortCode(newCode); err != nil {
			return nil, err
		}
		link.ShortCode = newCode
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if req.ClearPassword {
		link.PasswordHash = nil
	} else if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		link.PasswordHash = &hashStr
	}

	updated, err := s.linkRepo.Update(link)
	if err != nil {
		return nil, err
	}

	s.invalidate(oldCode)
	if updated.ShortCode != oldCode {
		s.invalidate(updated.ShortCode)
	}
	return updated, nil
}

// DeleteLink hard-deletes a link, enforcing ownership. Click history is not
// cascaded.
func (s *linkService) DeleteLink(id string, ownerID *string) error {
	link, err := s.linkRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := checkOwnership(link, ownerID); err != nil {
		return err
	}

	if err := s.linkRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(link.ShortCode)
	return nil
}

// checkOwnership allows the link's owner through, and any caller on the
// admin path (nil ownerID)
func checkOwnership(link *entities.Link, ownerID *string) error {
	if ownerID == nil {
		return nil
	}
	if link.OwnerID == nil || *link.OwnerID != *ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}

func linkStats(link *entities.Link) *models.LinkStatsResponse {
	return &models.LinkStatsResponse{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		Clicks:      link.Clicks,
		IsActive:    link.IsActive,
		HasPassword: link.HasPassword,
		CreatedAt:   link.CreatedAt,
	}
}

func linkCacheKey(shortCode string) string {
	return fmt.Sprintf("link:%s", shortCode)
}

func takenCacheKey(shortCode string) string {
	return fmt.Sprintf("shortcode:exists:%s", shortCode)
}

func (s *linkService) markCodeTaken(shortCode string) {
	if s.cache != nil {
		s.cache.Set(s.ctx, takenCacheKey(shortCode), "taken", 1*time.Hour)
	}
}

func (s *linkService) invalidate(shortCode string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, linkCacheKey(shortCode))
		s.cache.Delete(s.ctx, takenCacheKey(shortCode))
	}
}
