package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
)

// ClickRepository defines the interface for click log database operations
type ClickRepository interface {
	Record(click *entities.Click) (*entities.Link, error)
	ListSince(since time.Time) ([]entities.Click, error)
	ListByLinkSince(linkID string, since time.Time) ([]entities.Click, error)
	ListRecent(limit int) ([]entities.Click, error)
	CountSince(since time.Time) (int, error)
}

type clickRepository struct {
	db *sql.DB
}

// NewClickRepository creates a new click repository
func NewClickRepository(db *sql.DB) ClickRepository {
	return &clickRepository{db: db}
}

// Record increments the link's click counter and appends a click event in a
// single transaction. Both writes commit together or not at all, and the
// counter bump happens DB-side so concurrent visits never lose increments.
// Returns the link with its updated counter.
func (r *clickRepository) Record(click *entities.Click) (*entities.Link, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE links
		SET clicks = clicks + 1
		WHERE short_code = $1
		RETURNING ` + linkColumns

	var link entities.Link
	err = tx.QueryRow(query, click.ShortCode).Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.OwnerID,
		&link.Clicks,
		&link.IsActive,
		&link.PasswordHash,
		&link.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment click count: %w", err)
	}
	link.HasPassword = link.PasswordHash != nil

	_, err = tx.Exec(`
		INSERT INTO clicks (link_id, short_code, device, country, referrer_domain, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, link.ID, click.ShortCode, click.Device, click.Country, click.ReferrerDomain, click.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to log click: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit click: %w", err)
	}
	return &link, nil
}

// ListSince retrieves all click events at or after the given time
func (r *clickRepository) ListSince(since time.Time) ([]entities.Click, error) {
	query := `
		SELECT id, link_id, short_code, device, country, referrer_domain, timestamp
		FROM clicks
		WHERE timestamp >= $1
		ORDER BY timestamp ASC
	`
	return r.queryClicks(query, since)
}

// ListByLinkSince retrieves click events for one link at or after the given
// time
func (r *clickRepository) ListByLinkSince(linkID string, since time.Time) ([]entities.Click, error) {
	query := `
		SELECT id, link_id, short_code, device, country, referrer_domain, timestamp
		FROM clicks
		WHERE link_id = $1 AND timestamp >= $2
		ORDER BY timestamp ASC
	`
	return r.queryClicks(query, linkID, since)
}

// ListRecent retrieves the most recent click events, newest first
func (r *clickRepository) ListRecent(limit int) ([]entities.Click, error) {
	query := `
		SELECT id, link_id, short_code, device, country, referrer_domain, timestamp
		FROM clicks
		ORDER BY timestamp DESC
		LIMIT $1
	`
	return r.queryClicks(query, limit)
}

// CountSince returns the number of click events at or after the given time
func (r *clickRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM clicks WHERE timestamp >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

func (r *clickRepository) queryClicks(query string, args ...interface{}) ([]entities.Click, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	defer rows.Close()

	var clicks []entities.Click
	for rows.Next() {
		var click entities.Click
		err := rows.Scan(
			&click.ID,
			&click.LinkID,
			&click.ShortCode,
			&click.Device,
			&click.Country,
			&click.ReferrerDomain,
			&click.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		clicks = append(clicks, click)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clicks: %w", err)
	}
	return clicks, nil
}
