package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
)

// SEORepository defines the interface for the singleton SEO settings row
type SEORepository interface {
	Get() (*entities.SEOSettings, error)
	Update(settings *entities.SEOSettings) (*entities.SEOSettings, error)
}

type seoRepository struct {
	db *sql.DB
}

// NewSEORepository creates a new SEO settings repository
func NewSEORepository(db *sql.DB) SEORepository {
	return &seoRepository{db: db}
}

const seoColumns = `id, site_name, site_description, site_keywords, site_url, default_title, default_description, twitter_handle, og_image, updated_at`

func scanSEO(row *sql.Row) (*entities.SEOSettings, error) {
	var s entities.SEOSettings
	err := row.Scan(
		&s.ID,
		&s.SiteName,
		&s.SiteDescription,
		&s.SiteKeywords,
		&s.SiteURL,
		&s.DefaultTitle,
		&s.DefaultDescription,
		&s.TwitterHandle,
		&s.OGImage,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get retrieves the settings row (seeded by migrations)
func (r *seoRepository) Get() (*entities.SEOSettings, error) {
	query := `SELECT ` + seoColumns + ` FROM seo_settings LIMIT 1`

	settings, err := scanSEO(r.db.QueryRow(query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get SEO settings: %w", err)
	}
	return settings, nil
}

// Update replaces the settings row
func (r *seoRepository) Update(settings *entities.SEOSettings) (*entities.SEOSettings, error) {
	query := `
		UPDATE seo_settings
		SET site_name = $1, site_description = $2, site_keywords = $3, site_url = $4,
		    default_title = $5, default_description = $6, twitter_handle = $7, og_image = $8,
		    updated_at = now()
		RETURNING ` + seoColumns

	updated, err := scanSEO(r.db.QueryRow(query,
		settings.SiteName,
		settings.SiteDescription,
		settings.SiteKeywords,
		settings.SiteURL,
		settings.DefaultTitle,
		settings.DefaultDescription,
		settings.TwitterHandle,
		settings.OGImage,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update SEO settings: %w", err)
	}
	return updated, nil
}
