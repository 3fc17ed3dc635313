package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"minilink/internal/apperrors"
	"minilink/internal/entities"

	"github.com/lib/pq"
)

// LinkRepository defines the interface for link database operations
type LinkRepository interface {
	Create(link *entities.Link) (*entities.Link, error)
	FindByShortCode(shortCode string) (*entities.Link, error)
	FindByID(id string) (*entities.Link, error)
	ListByOwner(ownerID string) ([]entities.Link, error)
	ListRecent(limit int) ([]entities.Link, error)
	TopByClicks(limit int) ([]entities.Link, error)
	Update(link *entities.Link) (*entities.Link, error)
	Delete(id string) error
	Count() (int, error)
	CountCreatedSince(since time.Time) (int, error)
	SumClicks() (int, error)
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

const linkColumns = `id, short_code, original_url, owner_id, clicks, is_active, password_hash, created_at`

func scanLink(row *sql.Row) (*entities.Link, error) {
	var link entities.Link
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.OwnerID,
		&link.Clicks,
		&link.IsActive,
		&link.PasswordHash,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	link.HasPassword = link.PasswordHash != nil
	return &link, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Create inserts a new link. The short_code unique index decides the winner
// when two creates race on the same code; the loser gets ErrDuplicateCode.
func (r *linkRepository) Create(link *entities.Link) (*entities.Link, error) {
	query := `
		INSERT INTO links (short_code, original_url, owner_id, is_active, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + linkColumns

	row := r.db.QueryRow(query, link.ShortCode, link.OriginalURL, link.OwnerID, link.IsActive, link.PasswordHash)
	created, err := scanLink(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return created, nil
}

// FindByShortCode finds a link by its short code
func (r *linkRepository) FindByShortCode(shortCode string) (*entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE short_code = $1`

	link, err := scanLink(r.db.QueryRow(query, shortCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// FindByID finds a link by its ID (UUID)
func (r *linkRepository) FindByID(id string) (*entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1`

	link, err := scanLink(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// ListByOwner retrieves all links for a user, newest first
func (r *linkRepository) ListByOwner(ownerID string) ([]entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryLinks(query, ownerID)
}

// ListRecent retrieves the most recently created links
func (r *linkRepository) ListRecent(limit int) ([]entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY created_at DESC LIMIT $1`
	return r.queryLinks(query, limit)
}

// TopByClicks retrieves the most clicked links, ties broken by descending
// creation time
func (r *linkRepository) TopByClicks(limit int) ([]entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY clicks DESC, created_at DESC LIMIT $1`
	return r.queryLinks(query, limit)
}

func (r *linkRepository) queryLinks(query string, args ...interface{}) ([]entities.Link, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []entities.Link
	for rows.Next() {
		var link entities.Link
		err := rows.Scan(
			&link.ID,
			&link.ShortCode,
			&link.OriginalURL,
			&link.OwnerID,
			&link.Clicks,
			&link.IsActive,
			&link.PasswordHash,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		link.HasPassword = link.PasswordHash != nil
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// Update replaces the mutable fields of a link. A short_code change goes
// through the same unique index as Create, so collisions surface as
// ErrDuplicateCode here too.
func (r *linkRepository) Update(link *entities.Link) (*entities.Link, error) {
	query := `
		UPDATE links
		SET short_code = $1, original_url = $2, is_active = $3, password_hash = $4
		WHERE id = $5
		RETURNING ` + linkColumns

	row := r.db.QueryRow(query, link.ShortCode, link.OriginalURL, link.IsActive, link.PasswordHash, link.ID)
	updated, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	return updated, nil
}

// Delete removes a link. Click history is intentionally left behind.
func (r *linkRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of links
func (r *linkRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

// CountCreatedSince returns the number of links created at or after the
// given time
func (r *linkRepository) CountCreatedSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM links WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

// SumClicks returns the total click count across all links
func (r *linkRepository) SumClicks() (int, error) {
	var sum int
	if err := r.db.QueryRow(`SELECT COALESCE(SUM(clicks), 0) FROM links`).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum clicks: %w", err)
	}
	return sum, nil
}
